package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidWindow is returned when a window is constructed with start >= end.
var ErrInvalidWindow = errors.New("invalid time window")

// TimeWindow is a half-open interval [Start, End), always stored in UTC.
// Immutable once constructed via NewTimeWindow.
type TimeWindow struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// NewTimeWindow validates the interval and normalizes both bounds to UTC.
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	if !start.Before(end) {
		return TimeWindow{}, fmt.Errorf("%w: start %s is not before end %s",
			ErrInvalidWindow, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return TimeWindow{Start: start.UTC(), End: end.UTC()}, nil
}

// Duration returns End - Start.
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Overlaps reports whether the two windows share any instant. Windows that
// only touch at a boundary (a.End == b.Start) do not overlap.
func (w TimeWindow) Overlaps(o TimeWindow) bool {
	return w.Start.Before(o.End) && o.Start.Before(w.End)
}

// Contains reports whether o lies entirely within w.
func (w TimeWindow) Contains(o TimeWindow) bool {
	return !o.Start.Before(w.Start) && !o.End.After(w.End)
}

// Equal reports whether both windows have identical bounds.
func (w TimeWindow) Equal(o TimeWindow) bool {
	return w.Start.Equal(o.Start) && w.End.Equal(o.End)
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("[%s, %s)", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
}
