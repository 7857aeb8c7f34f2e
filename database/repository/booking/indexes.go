// File: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Primary conflict-filter query: hosts + status + window overlap.
		{
			Keys: bson.D{
				{Key: "hostIds", Value: 1},
				{Key: "status", Value: 1},
				{Key: "window.start", Value: 1},
				{Key: "window.end", Value: 1},
			},
			Options: options.Index().SetName("host_status_window_idx"),
		},
		{
			Keys:    bson.D{{Key: "eventTypeId", Value: 1}},
			Options: options.Index().SetName("event_type_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
