// File: database/repository/host/interface.go
package hostRepo

import (
	"context"
	"log"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// HostRepository supplies the host roster with embedded availability rules.
type HostRepository interface {
	GetByID(ctx context.Context, id string) (*models.Host, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Host, error)
	Upsert(ctx context.Context, host models.Host) error
	Delete(ctx context.Context, id string) error
}

type mongoHostRepo struct {
	coll *mongo.Collection
}

// NewMongoHostRepo constructs a new MongoDB HostRepository.
func NewMongoHostRepo() HostRepository {
	r := &mongoHostRepo{
		coll: database.DB().Collection("hosts"),
	}
	if err := r.EnsureIndexes(); err != nil {
		log.Printf("host repo: %v", err)
	}
	return r
}
