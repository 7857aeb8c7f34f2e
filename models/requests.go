package models

// ListSlotsRequest is the query payload for the slot listing endpoint.
// Start/End are RFC 3339 timestamps; Timezone is an IANA zone name used for
// display grouping only (the engine works in UTC).
type ListSlotsRequest struct {
	EventTypeID string `form:"eventTypeId" binding:"required"`
	Start       string `form:"start" binding:"required"`
	End         string `form:"end" binding:"required"`
	Timezone    string `form:"timezone"`
}

// ReserveSlotRequest asks for a temporary hold on an exact slot window.
type ReserveSlotRequest struct {
	EventTypeID string `json:"eventTypeId" binding:"required"`
	Start       string `json:"start" binding:"required"`
	End         string `json:"end" binding:"required"`
	HolderID    string `json:"holderId" binding:"required"`
}

// SlotListResponse wraps the computed slots for a date range.
type SlotListResponse struct {
	EventTypeID string `json:"eventTypeId"`
	Timezone    string `json:"timezone,omitempty"`
	Slots       []Slot `json:"slots"`
}
