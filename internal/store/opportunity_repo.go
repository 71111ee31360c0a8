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

// OpportunityRepo implements the Opportunity half of PersistenceGateway
// (C4): idempotent upsert keyed on (source, external_id), preserving
// embedding and created_at across updates.
type OpportunityRepo struct {
	coll *mongo.Collection
}

// upsertMutableFields are the fields overwritten on every re-scrape of an
// already-known record. embedding, created_at, and _id are deliberately
// excluded — matching scraper_persistence_service.py's _upsert_opportunity,
// which never touches them on update.
func upsertMutableFields(o domain.Opportunity, now time.Time) bson.M {
	return bson.M{
		"host_id":                  o.HostID,
		"title":                    o.Title,
		"description":              o.Description,
		"short_description":        o.ShortDescription,
		"opportunity_type":         o.Type,
		"format":                   o.Format,
		"location":                 o.Location,
		"is_online":                o.IsOnline,
		"urls":                     o.URLs,
		"themes":                   o.Themes,
		"technologies":             o.Technologies,
		"prizes":                   o.Prizes,
		"total_prize_value":        o.TotalPrizeValue,
		"currency":                 o.Currency,
		"team_size_min":            o.TeamSizeMin,
		"team_size_max":            o.TeamSizeMax,
		"application_deadline":     o.ApplicationDeadline,
		"event_start_date":         o.EventStartDate,
		"event_end_date":           o.EventEndDate,
		"results_date":             o.ResultsDate,
		"is_student_only":          o.IsStudentOnly,
		"is_active":                o.IsActive,
		"sponsors":                 o.Sponsors,
		"judges":                   o.Judges,
		"requirements":             o.Requirements,
		"eligibility_criteria":     o.EligibilityCriteria,
		"submission_requirements":  o.SubmissionRequirements,
		"judging_criteria":         o.JudgingCriteria,
		"mentor_info":              o.MentorInfo,
		"resources":                o.Resources,
		"faq":                      o.FAQ,
		"difficulty_level":         o.DifficultyLevel,
		"expected_duration_hours":  o.ExpectedDurationHours,
		"age_requirement":          o.AgeRequirement,
		"geographic_restriction":   o.GeographicRestriction,
		"social_links":             o.SocialLinks,
		"participant_count":        o.ParticipantCount,
		"raw_data":                 o.RawData,
		"updated_at":               now,
	}
}

// UpsertResult tells the caller whether the record was newly inserted, so
// the orchestrator knows which records need an embedding generated.
type UpsertResult struct {
	Inserted bool
	ID       string
}

// Upsert inserts a new Opportunity or updates the existing one matched by
// (source, external_id). A lost insert-race (duplicate key from a
// concurrent insert) is retried once as a plain update, per PersistenceGateway's
// contract.
func (r *OpportunityRepo) Upsert(ctx context.Context, o domain.Opportunity, now time.Time) (UpsertResult, error) {
	filter := bson.M{"source": o.Source, "external_id": o.ExternalID}
	update := bson.M{
		"$set": upsertMutableFields(o, now),
		"$setOnInsert": bson.M{
			"_id":         uuid.NewString(),
			"source":      o.Source,
			"external_id": o.ExternalID,
			"created_at":  now,
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update, options.UpdateOne().SetUpsert(true))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the insert race to a concurrent upsert; fall back to a
			// plain update against the now-existing document.
			res, err = r.coll.UpdateOne(ctx, filter, bson.M{"$set": upsertMutableFields(o, now)})
			if err != nil {
				return UpsertResult{}, fmt.Errorf("store: retry upsert after duplicate key: %w", err)
			}
		} else {
			return UpsertResult{}, fmt.Errorf("store: upsert opportunity %s/%s: %w", o.Source, o.ExternalID, err)
		}
	}

	if res.UpsertedID != nil {
		id, _ := res.UpsertedID.(string)
		return UpsertResult{Inserted: true, ID: id}, nil
	}

	var existing domain.Opportunity
	if err := r.coll.FindOne(ctx, filter).Decode(&existing); err != nil {
		return UpsertResult{}, fmt.Errorf("store: fetch upserted id for %s/%s: %w", o.Source, o.ExternalID, err)
	}
	return UpsertResult{Inserted: false, ID: existing.ID}, nil
}

// SetEmbedding persists a generated embedding for one opportunity without
// touching any other field.
func (r *OpportunityRepo) SetEmbedding(ctx context.Context, id string, vector []float32) error {
	_, err := r.coll.UpdateByID(ctx, id, bson.M{"$set": bson.M{"embedding": vector}})
	if err != nil {
		return fmt.Errorf("store: set embedding for %s: %w", id, err)
	}
	return nil
}

// Get returns a single opportunity by ID.
func (r *OpportunityRepo) Get(ctx context.Context, id string) (*domain.Opportunity, error) {
	var o domain.Opportunity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: get opportunity %s: %w", id, err)
	}
	return &o, nil
}

// ListActive returns every active opportunity missing an embedding, or
// every active opportunity if onlyMissingEmbedding is false — the
// candidate set for backfill and for the match service's scoring pass.
func (r *OpportunityRepo) ListActive(ctx context.Context, onlyMissingEmbedding bool) ([]domain.Opportunity, error) {
	filter := bson.M{"is_active": true}
	if onlyMissingEmbedding {
		filter["embedding"] = bson.M{"$exists": false}
	}
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("store: list active opportunities: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Opportunity
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("store: decode active opportunities: %w", err)
	}
	return out, nil
}

// EmbeddingStats reports coverage of the opportunities collection, the
// shape internal/api's /v1/embeddings/stats endpoint exposes.
type EmbeddingStats struct {
	Total            int64
	WithEmbedding    int64
	WithoutEmbedding int64
}

// Stats computes embedding coverage across all opportunities.
func (r *OpportunityRepo) Stats(ctx context.Context) (EmbeddingStats, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return EmbeddingStats{}, fmt.Errorf("store: count total: %w", err)
	}
	withEmbedding, err := r.coll.CountDocuments(ctx, bson.M{"embedding": bson.M{"$exists": true}})
	if err != nil {
		return EmbeddingStats{}, fmt.Errorf("store: count with embedding: %w", err)
	}
	return EmbeddingStats{
		Total:            total,
		WithEmbedding:    withEmbedding,
		WithoutEmbedding: total - withEmbedding,
	}, nil
}
