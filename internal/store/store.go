// Package store implements the PersistenceGateway: MongoDB-backed
// collections for Opportunity, Host, Match, and ScraperRun documents,
// with the upsert semantics and index set spec.md §4.4/§6.3 require.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/opportunityradar/radar/internal/redact"
)

const (
	collOpportunities = "opportunities"
	collHosts         = "hosts"
	collMatches       = "matches"
	collScraperRuns   = "scraper_runs"
)

// Store wraps a connected Mongo database handle and exposes one
// repository per collection.
type Store struct {
	db *mongo.Database

	Opportunities *OpportunityRepo
	Hosts         *HostRepo
	Matches       *MatchRepo
	ScraperRuns   *ScraperRunRepo
}

// Connect dials uri, selects dbName, and builds a Store with every
// required index created (idempotent — safe to call on every boot).
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("store: connect: %s", redact.String(err.Error()))
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("store: ping: %s", redact.String(err.Error()))
	}

	s := NewStoreFromDatabase(client.Database(dbName))
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStoreFromDatabase wires a Store's repositories against an
// already-selected database, without creating indexes. Connect uses this
// for the real dial path; it's also the seam tests reach for to back a
// Store with a mocked database handle (see mtest.New) rather than a live
// Mongo deployment.
func NewStoreFromDatabase(db *mongo.Database) *Store {
	return &Store{
		db:            db,
		Opportunities: &OpportunityRepo{coll: db.Collection(collOpportunities)},
		Hosts:         &HostRepo{coll: db.Collection(collHosts)},
		Matches:       &MatchRepo{coll: db.Collection(collMatches)},
		ScraperRuns:   &ScraperRunRepo{coll: db.Collection(collScraperRuns)},
	}
}

// Disconnect closes the underlying Mongo client.
func (s *Store) Disconnect(ctx context.Context) error {
	if err := s.db.Client().Disconnect(ctx); err != nil {
		return fmt.Errorf("store: disconnect: %w", err)
	}
	return nil
}
