// File: services/scheduling/interface.go
package scheduling

import (
	"context"
	"time"

	"slotify/models"
)

// SchedulingEngine is the external surface of the availability and
// reservation core. ListSlots is pure over caller-supplied state and safe for
// unlimited concurrent use; the reservation operations funnel into the Ledger,
// the engine's only shared-mutable component.
type SchedulingEngine interface {
	// ListSlots computes the ordered bookable slots for an event type over
	// [rng.Start, rng.End).
	ListSlots(ctx context.Context, eventTypeID string, rng models.TimeWindow) ([]models.Slot, error)

	// ReserveSlot places a short-lived exclusive hold on an exact slot
	// window. Returns reservation.ErrConflict when another holder already
	// holds it, ErrSlotUnavailable when the window is not currently bookable.
	ReserveSlot(ctx context.Context, eventTypeID string, window models.TimeWindow, holderID string) (*models.Reservation, error)

	// ReleaseReservation drops a hold. Idempotent.
	ReleaseReservation(ctx context.Context, token string) error

	// ConfirmReservation promotes a hold into a durable booking. Returns
	// (nil, nil) when the token is unknown or expired.
	ConfirmReservation(ctx context.Context, token string) (*models.Booking, error)
}

// ExpiryScheduler schedules background cleanup of a hold after its TTL has
// passed. Cleanup is housekeeping only; correctness never depends on it
// because expiry is enforced lazily by the ledger itself.
type ExpiryScheduler interface {
	ScheduleCleanup(ctx context.Context, token string, delay time.Duration) error
}
