package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates every index spec.md §6.3 requires. Index creation
// in Mongo is idempotent by name, so this is safe to run on every boot.
func (s *Store) ensureIndexes(ctx context.Context) error {
	opps := s.db.Collection(collOpportunities)
	_, err := opps.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "source", Value: 1}, {Key: "external_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("source_external_id_unique"),
		},
		{Keys: bson.D{{Key: "opportunity_type", Value: 1}}, Options: options.Index().SetName("opportunity_type")},
		{Keys: bson.D{{Key: "is_active", Value: 1}}, Options: options.Index().SetName("is_active")},
		{Keys: bson.D{{Key: "application_deadline", Value: 1}}, Options: options.Index().SetName("application_deadline")},
		{Keys: bson.D{{Key: "host_id", Value: 1}}, Options: options.Index().SetName("host_id")},
	})
	if err != nil {
		return fmt.Errorf("store: create opportunity indexes: %w", err)
	}

	hosts := s.db.Collection(collHosts)
	_, err = hosts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true).SetName("slug_unique")},
	})
	if err != nil {
		return fmt.Errorf("store: create host indexes: %w", err)
	}

	matches := s.db.Collection(collMatches)
	_, err = matches.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "profile_id", Value: 1}, {Key: "opportunity_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("profile_opportunity_unique"),
		},
		{Keys: bson.D{{Key: "profile_id", Value: 1}, {Key: "score", Value: -1}}, Options: options.Index().SetName("profile_score")},
	})
	if err != nil {
		return fmt.Errorf("store: create match indexes: %w", err)
	}

	runs := s.db.Collection(collScraperRuns)
	_, err = runs.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "source", Value: 1}, {Key: "started_at", Value: -1}}, Options: options.Index().SetName("source_started_at")},
	})
	if err != nil {
		return fmt.Errorf("store: create scraper_run indexes: %w", err)
	}

	return nil
}
