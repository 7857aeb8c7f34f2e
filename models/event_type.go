package models

import "time"

// SchedulingPolicy decides how per-host availability combines into slots.
type SchedulingPolicy string

const (
	// PolicyAnyOf needs at least one eligible host free for a slot.
	PolicyAnyOf SchedulingPolicy = "ANY_OF"
	// PolicyCollective needs every fixed host simultaneously free.
	PolicyCollective SchedulingPolicy = "COLLECTIVE"
	// PolicyRoundRobin lists like ANY_OF; the host pick happens at booking time.
	PolicyRoundRobin SchedulingPolicy = "ROUND_ROBIN"
)

// EventType is the bookable product: duration, buffers, host pool and policy.
type EventType struct {
	ID                   string           `bson:"id" json:"id"`
	TenantID             string           `bson:"tenantId" json:"tenantId"`
	Title                string           `bson:"title" json:"title"`
	DurationMinutes      int              `bson:"durationMinutes" json:"durationMinutes"`
	GranularityMinutes   int              `bson:"granularityMinutes" json:"granularityMinutes"`
	BufferBeforeMinutes  int              `bson:"bufferBeforeMinutes,omitempty" json:"bufferBeforeMinutes,omitempty"`
	BufferAfterMinutes   int              `bson:"bufferAfterMinutes,omitempty" json:"bufferAfterMinutes,omitempty"`
	MinimumNoticeMinutes int              `bson:"minimumNoticeMinutes,omitempty" json:"minimumNoticeMinutes,omitempty"`
	Policy               SchedulingPolicy `bson:"policy" json:"policy"`
	HostIDs              []string         `bson:"hostIds" json:"hostIds"`
	// FallbackToAllHosts re-opens the full host pool when round-robin
	// filtering leaves no eligible host for a window.
	FallbackToAllHosts bool `bson:"fallbackToAllHosts,omitempty" json:"fallbackToAllHosts,omitempty"`
	Hidden             bool `bson:"hidden,omitempty" json:"hidden,omitempty"`
}

// Duration returns the event length as a duration.
func (e EventType) Duration() time.Duration {
	return time.Duration(e.DurationMinutes) * time.Minute
}

// Granularity returns the slot step; defaults to the event duration when unset.
func (e EventType) Granularity() time.Duration {
	if e.GranularityMinutes <= 0 {
		return e.Duration()
	}
	return time.Duration(e.GranularityMinutes) * time.Minute
}

// MinimumNotice returns the lead time required before a slot can start.
func (e EventType) MinimumNotice() time.Duration {
	return time.Duration(e.MinimumNoticeMinutes) * time.Minute
}
