// File: database/repository/host/crud.go
package hostRepo

import (
	"context"
	"fmt"
	"time"

	"slotify/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoHostRepo) GetByID(ctx context.Context, id string) (*models.Host, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var host models.Host
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&host); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch host %s: %w", id, err)
	}
	return &host, nil
}

func (r *mongoHostRepo) GetByIDs(ctx context.Context, ids []string) ([]models.Host, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if len(ids) == 0 {
		return []models.Host{}, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch hosts: %w", err)
	}
	defer cursor.Close(ctx)

	var hosts []models.Host
	if err := cursor.All(ctx, &hosts); err != nil {
		return nil, fmt.Errorf("failed to decode hosts: %w", err)
	}
	return hosts, nil
}

func (r *mongoHostRepo) Upsert(ctx context.Context, host models.Host) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.coll.ReplaceOne(ctx, bson.M{"id": host.ID}, host, opts); err != nil {
		return fmt.Errorf("failed to upsert host %s: %w", host.ID, err)
	}
	return nil
}

func (r *mongoHostRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete host %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
