package scheduling

import (
	"testing"
	"time"

	"slotify/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking(w models.TimeWindow) models.Booking {
	return models.Booking{ID: "b", Window: w, Status: models.BookingConfirmed}
}

func TestFilterConflictsCarvesBooking(t *testing.T) {
	avail := []models.TimeWindow{window(t, 9, 0, 17, 0)}
	busy := []models.Booking{booking(window(t, 12, 0, 13, 0))}

	got := FilterConflicts(avail, busy, 0, 0)
	require.Len(t, got, 2)
	assert.Equal(t, window(t, 9, 0, 12, 0), got[0])
	assert.Equal(t, window(t, 13, 0, 17, 0), got[1])
}

func TestFilterConflictsAppliesBuffers(t *testing.T) {
	avail := []models.TimeWindow{window(t, 9, 0, 17, 0)}
	busy := []models.Booking{booking(window(t, 12, 0, 13, 0))}

	got := FilterConflicts(avail, busy, 15*time.Minute, 30*time.Minute)
	require.Len(t, got, 2)
	assert.Equal(t, window(t, 9, 0, 11, 45), got[0])
	assert.Equal(t, window(t, 13, 30, 17, 0), got[1])
}

// Overlapping bookings are merged before subtraction, so the resulting
// availability must not depend on the order the bookings arrive in.
func TestFilterConflictsOrderIndependent(t *testing.T) {
	avail := []models.TimeWindow{window(t, 9, 0, 17, 0)}
	a := booking(window(t, 10, 0, 12, 0))
	b := booking(window(t, 11, 0, 13, 0))

	first := FilterConflicts(avail, []models.Booking{a, b}, 0, 0)
	second := FilterConflicts(avail, []models.Booking{b, a}, 0, 0)

	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, window(t, 9, 0, 10, 0), first[0])
	assert.Equal(t, window(t, 13, 0, 17, 0), first[1])
}

func TestFilterConflictsNoBookings(t *testing.T) {
	avail := []models.TimeWindow{window(t, 9, 0, 17, 0)}
	assert.Equal(t, avail, FilterConflicts(avail, nil, time.Hour, time.Hour))
}
