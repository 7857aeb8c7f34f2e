// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"log"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository reads existing commitments for conflict filtering and
// persists the durable booking written after a reservation is confirmed.
type BookingRepository interface {
	// ListConfirmed returns confirmed bookings involving any of the hosts
	// whose windows overlap rng.
	ListConfirmed(ctx context.Context, hostIDs []string, rng models.TimeWindow) ([]models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) error
	Cancel(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	r := &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
	if err := r.EnsureIndexes(); err != nil {
		log.Printf("booking repo: %v", err)
	}
	return r
}
