package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/opportunityradar/radar/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HostRepo persists Host documents, keyed by a unique slug.
type HostRepo struct {
	coll *mongo.Collection
}

// UpsertBySlug inserts or updates a Host by slug, returning its ID. Used
// by the ingestion path to attach a stable host_id to every Opportunity
// it persists.
func (r *HostRepo) UpsertBySlug(ctx context.Context, name, slug, websiteURL string, now time.Time) (string, error) {
	filter := bson.M{"slug": slug}
	update := bson.M{
		"$set": bson.M{
			"name":        name,
			"website_url": websiteURL,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{
			"_id":        uuid.NewString(),
			"slug":       slug,
			"created_at": now,
		},
	}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return "", fmt.Errorf("store: upsert host %s: %w", slug, err)
	}

	var host domain.Host
	if err := r.coll.FindOne(ctx, filter).Decode(&host); err != nil {
		return "", fmt.Errorf("store: fetch upserted host %s: %w", slug, err)
	}
	return host.ID, nil
}
