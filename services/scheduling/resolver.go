package scheduling

import (
	"fmt"
	"time"

	"slotify/models"
)

const dateLayout = "2006-01-02"

// ResolveAvailability expands a host's weekly rules and date overrides into
// concrete UTC windows over the range [rng.Start, rng.End). The result is
// sorted, mutually non-overlapping, and clipped to the range. It is
// recomputed on every call; there is no hidden state.
//
// A date override fully replaces the weekly rules for that calendar date; an
// override with no windows marks the day unavailable. Weekly rules are
// expanded per concrete date in the rule's own timezone, so wall-clock times
// stay put across DST transitions.
func ResolveAvailability(host models.Host, rng models.TimeWindow) ([]models.TimeWindow, error) {
	overridden := make(map[string]struct{}, len(host.DateOverrides))
	for _, o := range host.DateOverrides {
		overridden[o.Date] = struct{}{}
	}

	var windows []models.TimeWindow
	for _, rule := range host.WeeklyRules {
		expanded, err := expandWeeklyRule(host, rule, rng, overridden)
		if err != nil {
			return nil, err
		}
		windows = append(windows, expanded...)
	}

	// Override windows are already absolute instants; out-of-range ones are
	// dropped by the final clip.
	for _, o := range host.DateOverrides {
		windows = append(windows, o.Windows...)
	}

	return clipAll(MergeOverlapping(windows), rng), nil
}

// expandWeeklyRule walks every local calendar date in range that matches the
// rule's weekday. The walk starts one day early and ends one day late:
// overnight rules begun on an adjacent local day can still reach into the
// range, and the clip removes any excess.
func expandWeeklyRule(host models.Host, rule models.WeeklyRule, rng models.TimeWindow, overridden map[string]struct{}) ([]models.TimeWindow, error) {
	tz := host.RuleTimezone(rule)
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: host %s has unknown timezone %q", ErrInvalidConfiguration, host.ID, tz)
	}

	first := rng.Start.In(loc).AddDate(0, 0, -1)
	day := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, loc)
	last := rng.End.In(loc).AddDate(0, 0, 1)

	var out []models.TimeWindow
	for ; !day.After(last); day = day.AddDate(0, 0, 1) {
		if day.Weekday() != rule.Weekday {
			continue
		}
		if _, ok := overridden[day.Format(dateLayout)]; ok {
			continue
		}
		out = append(out, expandRuleOnDate(rule, day, loc)...)
	}
	return out, nil
}

// expandRuleOnDate converts the rule's wall-clock minutes on one local date
// into UTC windows. time.Date carries the minute offsets through the
// location's rules for that specific date, which is what makes a 22:00 rule
// stay at 22:00 local on either side of a DST switch. A rule crossing local
// midnight splits at the boundary into two windows on two different UTC days.
func expandRuleOnDate(rule models.WeeklyRule, day time.Time, loc *time.Location) []models.TimeWindow {
	y, m, d := day.Date()
	start := time.Date(y, m, d, 0, rule.StartMinute, 0, 0, loc)

	if rule.EndMinute > rule.StartMinute {
		w, err := models.NewTimeWindow(start, time.Date(y, m, d, 0, rule.EndMinute, 0, 0, loc))
		if err != nil {
			return nil
		}
		return []models.TimeWindow{w}
	}

	midnight := time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	out := make([]models.TimeWindow, 0, 2)
	if w, err := models.NewTimeWindow(start, midnight); err == nil {
		out = append(out, w)
	}
	if rule.EndMinute > 0 {
		if w, err := models.NewTimeWindow(midnight, time.Date(y, m, d+1, 0, rule.EndMinute, 0, 0, loc)); err == nil {
			out = append(out, w)
		}
	}
	return out
}

func clipAll(windows []models.TimeWindow, rng models.TimeWindow) []models.TimeWindow {
	out := make([]models.TimeWindow, 0, len(windows))
	for _, w := range windows {
		if clipped, ok := Intersect(w, rng); ok {
			out = append(out, clipped)
		}
	}
	return out
}
