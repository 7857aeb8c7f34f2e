package scheduling

import (
	"testing"
	"time"

	"slotify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(t *testing.T, startHour, startMin, endHour, endMin int) models.TimeWindow {
	t.Helper()
	day := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	w, err := models.NewTimeWindow(
		day.Add(time.Duration(startHour)*time.Hour+time.Duration(startMin)*time.Minute),
		day.Add(time.Duration(endHour)*time.Hour+time.Duration(endMin)*time.Minute),
	)
	require.NoError(t, err)
	return w
}

func TestIntersect(t *testing.T) {
	a := window(t, 9, 0, 12, 0)
	b := window(t, 10, 0, 14, 0)

	got, ok := Intersect(a, b)
	require.True(t, ok)
	assert.Equal(t, window(t, 10, 0, 12, 0), got)

	// Disjoint windows share nothing.
	_, ok = Intersect(window(t, 9, 0, 10, 0), window(t, 11, 0, 12, 0))
	assert.False(t, ok)

	// Touching at a boundary is not an overlap under half-open semantics.
	_, ok = Intersect(window(t, 9, 0, 10, 0), window(t, 10, 0, 11, 0))
	assert.False(t, ok)
}

func TestSubtract(t *testing.T) {
	a := window(t, 9, 0, 17, 0)

	t.Run("hole in the middle leaves two pieces", func(t *testing.T) {
		got := Subtract(a, window(t, 12, 0, 13, 0))
		require.Len(t, got, 2)
		assert.Equal(t, window(t, 9, 0, 12, 0), got[0])
		assert.Equal(t, window(t, 13, 0, 17, 0), got[1])
	})

	t.Run("covering window removes everything", func(t *testing.T) {
		assert.Empty(t, Subtract(a, window(t, 8, 0, 18, 0)))
	})

	t.Run("disjoint window changes nothing", func(t *testing.T) {
		got := Subtract(a, window(t, 18, 0, 19, 0))
		require.Len(t, got, 1)
		assert.Equal(t, a, got[0])
	})

	t.Run("overlap at the left edge trims the start", func(t *testing.T) {
		got := Subtract(a, window(t, 8, 0, 10, 0))
		require.Len(t, got, 1)
		assert.Equal(t, window(t, 10, 0, 17, 0), got[0])
	})
}

func TestMergeOverlapping(t *testing.T) {
	t.Run("overlapping windows coalesce", func(t *testing.T) {
		got := MergeOverlapping([]models.TimeWindow{
			window(t, 10, 0, 12, 0),
			window(t, 9, 0, 11, 0),
		})
		require.Len(t, got, 1)
		assert.Equal(t, window(t, 9, 0, 12, 0), got[0])
	})

	t.Run("touching windows stay separate", func(t *testing.T) {
		got := MergeOverlapping([]models.TimeWindow{
			window(t, 9, 0, 10, 0),
			window(t, 10, 0, 11, 0),
		})
		assert.Len(t, got, 2)
	})

	t.Run("idempotent on already merged input", func(t *testing.T) {
		merged := MergeOverlapping([]models.TimeWindow{
			window(t, 9, 0, 10, 30),
			window(t, 11, 0, 12, 0),
			window(t, 10, 0, 10, 45),
		})
		assert.Equal(t, merged, MergeOverlapping(merged))
	})

	t.Run("does not mutate its input", func(t *testing.T) {
		in := []models.TimeWindow{
			window(t, 11, 0, 12, 0),
			window(t, 9, 0, 10, 0),
		}
		MergeOverlapping(in)
		assert.Equal(t, window(t, 11, 0, 12, 0), in[0])
	})
}

// Subtracting b and re-adding the intersection must tile a exactly.
func TestSubtractIntersectReconstruct(t *testing.T) {
	a := window(t, 9, 0, 17, 0)
	bs := []models.TimeWindow{
		window(t, 10, 0, 11, 0),
		window(t, 8, 0, 9, 30),
		window(t, 16, 30, 18, 0),
	}

	for _, b := range bs {
		inter, ok := Intersect(a, b)
		require.True(t, ok)

		pieces := append(Subtract(a, b), inter)
		merged := MergeOverlapping(pieces)

		var total time.Duration
		for _, p := range merged {
			assert.True(t, a.Contains(p))
			total += p.Duration()
		}
		assert.Equal(t, a.Duration(), total)
	}
}
