package scheduling

import (
	"sort"
	"time"

	"slotify/models"
)

// Interval algebra over half-open [start, end) windows. All functions here
// are pure: they never mutate their inputs and hold no state.

// Intersect returns the overlap of a and b. The second return value is false
// when the windows share no instant; windows that only touch at a boundary
// (a.End == b.Start) do not intersect.
func Intersect(a, b models.TimeWindow) (models.TimeWindow, bool) {
	start := maxTime(a.Start, b.Start)
	end := minTime(a.End, b.End)
	if !start.Before(end) {
		return models.TimeWindow{}, false
	}
	return models.TimeWindow{Start: start, End: end}, true
}

// Subtract removes b from a, returning the 0, 1, or 2 remaining pieces.
func Subtract(a, b models.TimeWindow) []models.TimeWindow {
	if !a.Overlaps(b) {
		return []models.TimeWindow{a}
	}
	out := make([]models.TimeWindow, 0, 2)
	if a.Start.Before(b.Start) {
		out = append(out, models.TimeWindow{Start: a.Start, End: b.Start})
	}
	if b.End.Before(a.End) {
		out = append(out, models.TimeWindow{Start: b.End, End: a.End})
	}
	return out
}

// MergeOverlapping returns the windows sorted by start time with every
// overlapping pair coalesced. Windows that merely touch stay separate.
func MergeOverlapping(windows []models.TimeWindow) []models.TimeWindow {
	if len(windows) == 0 {
		return nil
	}

	sorted := make([]models.TimeWindow, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].End.Before(sorted[j].End)
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []models.TimeWindow{sorted[0]}
	for _, w := range sorted[1:] {
		last := &merged[len(merged)-1]
		if w.Start.Before(last.End) {
			if w.End.After(last.End) {
				last.End = w.End
			}
			continue
		}
		merged = append(merged, w)
	}
	return merged
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
