package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeWindow(t *testing.T) {
	start := time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	w, err := NewTimeWindow(start, end)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, w.Duration())

	_, err = NewTimeWindow(end, start)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = NewTimeWindow(start, start)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestNewTimeWindowNormalizesToUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	local := time.Date(2025, 9, 15, 9, 0, 0, 0, loc)
	w, err := NewTimeWindow(local, local.Add(time.Hour))
	require.NoError(t, err)

	assert.Equal(t, time.UTC, w.Start.Location())
	assert.Equal(t, time.UTC, w.End.Location())
	assert.True(t, w.Start.Equal(local))
}

func TestTimeWindowOverlaps(t *testing.T) {
	base := time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)
	a := TimeWindow{Start: base, End: base.Add(time.Hour)}
	b := TimeWindow{Start: base.Add(30 * time.Minute), End: base.Add(90 * time.Minute)}
	touching := TimeWindow{Start: base.Add(time.Hour), End: base.Add(2 * time.Hour)}

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))
	assert.False(t, a.Overlaps(touching))
	assert.False(t, touching.Overlaps(a))
}

func TestTimeWindowContains(t *testing.T) {
	base := time.Date(2025, 9, 15, 9, 0, 0, 0, time.UTC)
	outer := TimeWindow{Start: base, End: base.Add(2 * time.Hour)}
	inner := TimeWindow{Start: base.Add(30 * time.Minute), End: base.Add(time.Hour)}

	assert.True(t, outer.Contains(inner))
	assert.True(t, outer.Contains(outer))
	assert.False(t, inner.Contains(outer))
}
