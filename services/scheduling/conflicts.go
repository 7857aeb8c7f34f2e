package scheduling

import (
	"time"

	"slotify/models"
)

// FilterConflicts subtracts a host's existing bookings, padded by the event's
// buffers, from its availability windows. Callers pass active bookings only;
// cancelled ones must be excluded upstream.
func FilterConflicts(avail []models.TimeWindow, bookings []models.Booking, bufferBefore, bufferAfter time.Duration) []models.TimeWindow {
	if len(bookings) == 0 || len(avail) == 0 {
		return avail
	}

	busy := make([]models.TimeWindow, 0, len(bookings))
	for _, b := range bookings {
		busy = append(busy, models.TimeWindow{
			Start: b.Window.Start.Add(-bufferBefore),
			End:   b.Window.End.Add(bufferAfter),
		})
	}
	// Merge the busy windows first so the subtraction order cannot change
	// how the remaining availability fragments.
	busy = MergeOverlapping(busy)

	out := avail
	for _, b := range busy {
		next := make([]models.TimeWindow, 0, len(out))
		for _, w := range out {
			next = append(next, Subtract(w, b)...)
		}
		out = next
	}
	return out
}
