package scheduling

import "errors"

var (
	// ErrInvalidConfiguration is returned when an event type references hosts
	// missing from the roster, has no fixed host for a collective event, or
	// carries an unknown policy or timezone.
	ErrInvalidConfiguration = errors.New("invalid event configuration")

	// ErrEventTypeNotFound is returned when the requested event type does not exist.
	ErrEventTypeNotFound = errors.New("event type not found")

	// ErrSlotUnavailable is returned when a reservation targets a window that
	// is no longer bookable. Recoverable: the caller should re-list slots.
	ErrSlotUnavailable = errors.New("slot is no longer available")
)
