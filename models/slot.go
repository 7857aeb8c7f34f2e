package models

// Slot is a candidate bookable window together with the hosts free for it.
// Slots are derived values, recomputed on every query and never persisted.
type Slot struct {
	Window          TimeWindow `json:"window"`
	EligibleHostIDs []string   `json:"eligibleHostIds"`
}
