package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/opportunityradar/radar/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ScraperRunRepo persists ScraperRun documents.
type ScraperRunRepo struct {
	coll *mongo.Collection
}

// Insert creates a new running ScraperRun and returns its generated ID.
func (r *ScraperRunRepo) Insert(ctx context.Context, run domain.ScraperRun) (string, error) {
	run.ID = uuid.NewString()
	if _, err := r.coll.InsertOne(ctx, run); err != nil {
		return "", fmt.Errorf("store: insert scraper run for %s: %w", run.Source, err)
	}
	return run.ID, nil
}

// Finish persists the final state of a completed run.
func (r *ScraperRunRepo) Finish(ctx context.Context, run domain.ScraperRun) error {
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": run.ID}, run)
	if err != nil {
		return fmt.Errorf("store: finish scraper run %s: %w", run.ID, err)
	}
	return nil
}

// LatestPerSource returns the most recent run for each source, used by
// the health-check sweep (§4.8) to detect sources that have gone silent.
func (r *ScraperRunRepo) LatestPerSource(ctx context.Context, sources []string) (map[string]domain.ScraperRun, error) {
	out := make(map[string]domain.ScraperRun, len(sources))
	for _, source := range sources {
		var run domain.ScraperRun
		opts := options.FindOne().SetSort(bson.D{{Key: "started_at", Value: -1}})
		err := r.coll.FindOne(ctx, bson.M{"source": source}, opts).Decode(&run)
		if err == mongo.ErrNoDocuments {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("store: latest run for %s: %w", source, err)
		}
		out[source] = run
	}
	return out, nil
}
