package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/opportunityradar/radar/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MatchRepo persists Match documents, keyed by (profile_id, opportunity_id).
type MatchRepo struct {
	coll *mongo.Collection
}

// ExistingStatus looks up the user-set status of a prior match between
// profile and opportunity, if any, so a re-score can preserve it instead
// of resetting to Pending.
func (r *MatchRepo) ExistingStatus(ctx context.Context, profileID, opportunityID string) (domain.MatchStatus, bool, error) {
	var m domain.Match
	err := r.coll.FindOne(ctx, bson.M{"profile_id": profileID, "opportunity_id": opportunityID}).Decode(&m)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("store: lookup existing match: %w", err)
	}
	return m.Status, true, nil
}

// Upsert writes a freshly scored Match, preserving CreatedAt and Status
// across re-scores (status is only ever set by whatever consumes this
// match, never by re-scoring).
func (r *MatchRepo) Upsert(ctx context.Context, m domain.Match, now time.Time) error {
	filter := bson.M{"profile_id": m.ProfileID, "opportunity_id": m.OpportunityID}
	update := bson.M{
		"$set": bson.M{
			"batch_id":      m.BatchID,
			"score":         m.Score,
			"breakdown":     m.Breakdown,
			"eligible":      m.Eligible,
			"reasons":       m.Reasons,
			"suggestions":   m.Suggestions,
			"match_reasons": m.MatchReasons,
			"updated_at":    now,
		},
		"$setOnInsert": bson.M{
			"_id":            uuid.NewString(),
			"profile_id":     m.ProfileID,
			"opportunity_id": m.OpportunityID,
			"status":         domain.MatchPending,
			"created_at":     now,
		},
	}
	_, err := r.coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store: upsert match %s/%s: %w", m.ProfileID, m.OpportunityID, err)
	}
	return nil
}

// TopForProfile returns the highest-scoring matches for a profile, most
// recent ties broken by score descending.
func (r *MatchRepo) TopForProfile(ctx context.Context, profileID string, limit int64) ([]domain.Match, error) {
	opts := options.Find().SetSort(bson.D{{Key: "score", Value: -1}}).SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{"profile_id": profileID}, opts)
	if err != nil {
		return nil, fmt.Errorf("store: list top matches for %s: %w", profileID, err)
	}
	defer cur.Close(ctx)

	var out []domain.Match
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("store: decode top matches for %s: %w", profileID, err)
	}
	return out, nil
}
