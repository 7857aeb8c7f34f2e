package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"slotify/models"
)

var (
	// ErrConflict is returned when a claim targets a key already held by a
	// live reservation for a different holder. Recoverable: the caller
	// should re-list slots and pick again.
	ErrConflict = errors.New("slot already reserved")
)

// Key identifies the unit of exclusion: one slot window of one event type.
type Key struct {
	EventTypeID string
	Window      models.TimeWindow
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%d|%d", k.EventTypeID, k.Window.Start.Unix(), k.Window.End.Unix())
}

// Ledger is the short-lived hold store. Per key the state machine is
// FREE -> HELD -> (CONFIRMED | RELEASED | EXPIRED) -> FREE. Claim is the only
// contended operation and must be atomic per key: of two concurrent claims on
// the same key, exactly one wins. Expiry is passive; an expired hold is
// treated as FREE by the next claim, with no cleanup pass required.
type Ledger interface {
	// Claim attempts to hold res's slot for res.HolderID. The ledger assigns
	// the token and expiry. A claim on a key already held by the same holder
	// refreshes the existing hold instead of failing. Returns ErrConflict
	// when another holder owns a live reservation for the key.
	Claim(ctx context.Context, res models.Reservation, ttl time.Duration) (*models.Reservation, error)

	// Release removes the reservation matching token. Idempotent: releasing
	// an unknown, expired, or already-released token is a successful no-op.
	Release(ctx context.Context, token string) error

	// Confirm removes the reservation matching token and returns it so the
	// caller can gate the durable booking write. Returns (nil, nil) when the
	// token is unknown or expired; idempotent like Release.
	Confirm(ctx context.Context, token string) (*models.Reservation, error)
}

func keyFor(res models.Reservation) Key {
	return Key{EventTypeID: res.EventTypeID, Window: res.Window}
}
