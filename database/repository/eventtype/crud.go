// File: database/repository/eventtype/crud.go
package eventtypeRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoEventTypeRepo) GetByID(ctx context.Context, id string) (*models.EventType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var eventType models.EventType
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&eventType); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch event type %s: %w", id, err)
	}
	return &eventType, nil
}

func (r *mongoEventTypeRepo) ListByTenant(ctx context.Context, tenantID string) ([]models.EventType, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"tenantId": tenantID})
	if err != nil {
		return nil, fmt.Errorf("failed to list event types for tenant %s: %w", tenantID, err)
	}
	defer cursor.Close(ctx)

	var eventTypes []models.EventType
	if err := cursor.All(ctx, &eventTypes); err != nil {
		return nil, fmt.Errorf("failed to decode event types: %w", err)
	}
	return eventTypes, nil
}

func (r *mongoEventTypeRepo) Upsert(ctx context.Context, eventType models.EventType) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": eventType.ID}, eventType, opts); err != nil {
		return fmt.Errorf("failed to upsert event type %s: %w", eventType.ID, err)
	}
	return nil
}

func (r *mongoEventTypeRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete event type %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
