package models

import "time"

// BookingStatus is the lifecycle state of a durable booking.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking is a durable commitment of one or more hosts for a window.
// The engine reads confirmed bookings as conflicts; it writes one on
// reservation confirm.
type Booking struct {
	ID          string        `bson:"id" json:"id"`
	TenantID    string        `bson:"tenantId" json:"tenantId"`
	EventTypeID string        `bson:"eventTypeId" json:"eventTypeId"`
	HostIDs     []string      `bson:"hostIds" json:"hostIds"`
	Window      TimeWindow    `bson:"window" json:"window"`
	HolderID    string        `bson:"holderId" json:"holderId"`
	Status      BookingStatus `bson:"status" json:"status"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
}
