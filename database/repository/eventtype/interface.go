// File: database/repository/eventtype/interface.go
package eventtypeRepo

import (
	"context"
	"log"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// EventTypeRepository supplies event-type configuration to the engine.
type EventTypeRepository interface {
	GetByID(ctx context.Context, id string) (*models.EventType, error)
	ListByTenant(ctx context.Context, tenantID string) ([]models.EventType, error)
	Upsert(ctx context.Context, eventType models.EventType) error
	Delete(ctx context.Context, id string) error
}

type mongoEventTypeRepo struct {
	coll *mongo.Collection
}

// NewMongoEventTypeRepo constructs a new MongoDB EventTypeRepository.
func NewMongoEventTypeRepo() EventTypeRepository {
	r := &mongoEventTypeRepo{
		coll: database.DB().Collection("eventTypes"),
	}
	if err := r.EnsureIndexes(); err != nil {
		log.Printf("event type repo: %v", err)
	}
	return r
}
