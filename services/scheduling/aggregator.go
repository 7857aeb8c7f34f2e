package scheduling

import (
	"fmt"
	"sort"
	"time"

	"slotify/models"
)

// HostAvailability pairs a host with its conflict-filtered windows.
type HostAvailability struct {
	Host    models.Host
	Windows []models.TimeWindow
}

// AggregateSlots combines per-host availability into the final ordered slot
// list according to the event's host-selection policy. The output is
// deterministic for identical inputs: any randomized host pick happens later,
// at booking time.
func AggregateSlots(event models.EventType, hosts []HostAvailability, now time.Time) ([]models.Slot, error) {
	var slots []models.Slot
	switch event.Policy {
	case models.PolicyAnyOf, models.PolicyRoundRobin:
		slots = aggregateUnion(event, hosts, now)
	case models.PolicyCollective:
		var err error
		slots, err = aggregateCollective(event, hosts, now)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: unknown scheduling policy %q", ErrInvalidConfiguration, event.Policy)
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Window.Start.Before(slots[j].Window.Start)
	})
	return slots, nil
}

// aggregateUnion builds slots wherever at least one host is free. Each slot
// records every host whose availability fully covers it. A slice no single
// host can cover is dropped, unless the event's fallback flag re-opens it to
// the whole pool.
func aggregateUnion(event models.EventType, hosts []HostAvailability, now time.Time) []models.Slot {
	var all []models.TimeWindow
	for _, h := range hosts {
		all = append(all, h.Windows...)
	}

	byWindow := make(map[models.TimeWindow]*models.Slot)
	var order []models.TimeWindow
	for _, merged := range MergeOverlapping(all) {
		for _, w := range sliceWindow(merged, event, now) {
			var eligible []string
			for _, h := range hosts {
				if covers(h.Windows, w) {
					eligible = append(eligible, h.Host.ID)
				}
			}
			if len(eligible) == 0 {
				if !event.FallbackToAllHosts {
					continue
				}
				for _, h := range hosts {
					eligible = append(eligible, h.Host.ID)
				}
			}
			sort.Strings(eligible)

			// Dedupe by exact window bounds, merging eligible sets.
			if existing, ok := byWindow[w]; ok {
				existing.EligibleHostIDs = unionIDs(existing.EligibleHostIDs, eligible)
				continue
			}
			byWindow[w] = &models.Slot{Window: w, EligibleHostIDs: eligible}
			order = append(order, w)
		}
	}

	slots := make([]models.Slot, 0, len(order))
	for _, w := range order {
		slots = append(slots, *byWindow[w])
	}
	return slots
}

// aggregateCollective intersects the fixed hosts' windows pairwise: a slot
// exists only where every fixed host is simultaneously free.
func aggregateCollective(event models.EventType, hosts []HostAvailability, now time.Time) ([]models.Slot, error) {
	var fixed []HostAvailability
	for _, h := range hosts {
		if h.Host.IsFixed {
			fixed = append(fixed, h)
		}
	}
	if len(fixed) == 0 {
		return nil, fmt.Errorf("%w: collective event %s has no fixed hosts", ErrInvalidConfiguration, event.ID)
	}

	common := fixed[0].Windows
	ids := []string{fixed[0].Host.ID}
	for _, h := range fixed[1:] {
		common = intersectSets(common, h.Windows)
		ids = append(ids, h.Host.ID)
		if len(common) == 0 {
			return nil, nil
		}
	}
	sort.Strings(ids)

	var slots []models.Slot
	for _, merged := range common {
		for _, w := range sliceWindow(merged, event, now) {
			slots = append(slots, models.Slot{Window: w, EligibleHostIDs: append([]string(nil), ids...)})
		}
	}
	return slots, nil
}

// sliceWindow cuts a merged window into event-length slots stepped at the
// event granularity, aligned to the window start. A trailing partial step
// shorter than the event duration is dropped, as are slots starting inside
// the minimum-notice lead time.
func sliceWindow(w models.TimeWindow, event models.EventType, now time.Time) []models.TimeWindow {
	duration := event.Duration()
	step := event.Granularity()
	if duration <= 0 || step <= 0 {
		return nil
	}
	earliest := now.Add(event.MinimumNotice())

	var out []models.TimeWindow
	for start := w.Start; !start.Add(duration).After(w.End); start = start.Add(step) {
		if start.Before(earliest) {
			continue
		}
		out = append(out, models.TimeWindow{Start: start, End: start.Add(duration)})
	}
	return out
}

// intersectSets intersects two sorted window sets pairwise.
func intersectSets(a, b []models.TimeWindow) []models.TimeWindow {
	var out []models.TimeWindow
	for _, x := range a {
		for _, y := range b {
			if w, ok := Intersect(x, y); ok {
				out = append(out, w)
			}
		}
	}
	return MergeOverlapping(out)
}

// covers reports whether any single window in ws fully contains w.
func covers(ws []models.TimeWindow, w models.TimeWindow) bool {
	for _, candidate := range ws {
		if candidate.Contains(w) {
			return true
		}
	}
	return false
}

func unionIDs(a, b []string) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for _, id := range a {
		seen[id] = struct{}{}
	}
	for _, id := range b {
		seen[id] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
