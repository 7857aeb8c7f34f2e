package models

import "time"

// Reservation is a short-lived exclusive hold on a slot pending confirmation.
// It is the only mutable, time-bounded entity in the engine: created on claim
// and destroyed exactly once by confirm, release, or TTL expiry.
type Reservation struct {
	Token           string     `json:"token"`
	EventTypeID     string     `json:"eventTypeId"`
	Window          TimeWindow `json:"window"`
	HolderID        string     `json:"holderId"`
	EligibleHostIDs []string   `json:"eligibleHostIds,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	ExpiresAt       time.Time  `json:"expiresAt"`
}

// Expired reports whether the hold has passed its TTL at the given instant.
func (r Reservation) Expired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}
