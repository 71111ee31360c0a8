// Package match implements the MatchService (C10): scoring one Profile
// against every active Opportunity and persisting the matches that clear
// the configured eligibility threshold.
package match

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/opportunityradar/radar/internal/domain"
	"github.com/opportunityradar/radar/internal/observability"
	"github.com/opportunityradar/radar/internal/scoring"
	"github.com/opportunityradar/radar/internal/store"
)

// Service computes and persists Matches for a Profile against the active
// opportunity pool. Candidate retrieval is a brute-force scan over
// OpportunityRepo.ListActive rather than a vector index: spec.md sanctions
// this at the corpus scale a single-aggregator deployment reaches, and it
// avoids standing up a second stateful dependency (e.g. Weaviate) purely
// for k-NN the scan already satisfies.
type Service struct {
	store   *store.Store
	metrics *observability.Metrics
	logger  *slog.Logger
}

// New builds a Service wired to store for candidate retrieval and match
// persistence, and metrics for the computed-matches counter.
func New(s *store.Store, metrics *observability.Metrics, logger *slog.Logger) *Service {
	return &Service{store: s, metrics: metrics, logger: logger}
}

// Summary is one scored-and-persisted match, returned to the caller of
// Compute so an API handler doesn't need a second read to report results.
type Summary struct {
	OpportunityID string
	Score         float64
	Eligible      bool
}

// Compute scores profile against every active opportunity, persists every
// match whose total score is at least minScore, and returns a summary of
// what was persisted, ranked by score descending. A re-score of an
// existing (profile, opportunity) pair never touches a status the caller
// already set — MatchRepo.Upsert only sets status on first insert.
func (s *Service) Compute(ctx context.Context, profile *domain.Profile, minScore float64, now time.Time) ([]Summary, error) {
	candidates, err := s.store.Opportunities.ListActive(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("match: list candidates: %w", err)
	}

	batchID := uuid.NewString()
	scored := rankCandidates(profile, candidates, minScore, now)

	var summaries []Summary
	for _, sc := range scored {
		m := domain.Match{
			ProfileID:     profile.ID,
			OpportunityID: sc.opportunity.ID,
			BatchID:       batchID,
			Score:         sc.result.Breakdown.Total,
			Breakdown:     sc.result.Breakdown,
			Eligible:      sc.result.Eligible,
			Reasons:       sc.result.Reasons,
			Suggestions:   sc.result.Suggestions,
			MatchReasons:  sc.result.MatchReasons,
		}
		if err := s.store.Matches.Upsert(ctx, m, now); err != nil {
			s.logger.Error("match: persist failed", "profile_id", profile.ID, "opportunity_id", sc.opportunity.ID, "error", err)
			continue
		}
		if s.metrics != nil {
			s.metrics.MatchesComputed.Inc()
		}
		summaries = append(summaries, Summary{
			OpportunityID: sc.opportunity.ID,
			Score:         sc.result.Breakdown.Total,
			Eligible:      sc.result.Eligible,
		})
	}

	s.logger.Info("match: compute complete", "profile_id", profile.ID, "candidates", len(candidates), "matched", len(summaries))
	return summaries, nil
}

type scoredCandidate struct {
	opportunity domain.Opportunity
	result      scoring.Result
}

// rankCandidates scores profile against every candidate, drops anything
// below minScore, and returns the survivors ordered score descending —
// pulled out of Compute so the ranking policy is testable without a Mongo
// connection.
func rankCandidates(profile *domain.Profile, candidates []domain.Opportunity, minScore float64, now time.Time) []scoredCandidate {
	var out []scoredCandidate
	for i := range candidates {
		result := scoring.Score(profile, &candidates[i], now)
		if result.Breakdown.Total < minScore {
			continue
		}
		out = append(out, scoredCandidate{opportunity: candidates[i], result: result})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].result.Breakdown.Total > out[j].result.Breakdown.Total
	})
	return out
}

// Top returns the highest-scoring previously-computed matches for a
// profile, a thin pass-through to MatchRepo used by the /v1/matches/top
// endpoint.
func (s *Service) Top(ctx context.Context, profileID string, limit int64) ([]domain.Match, error) {
	return s.store.Matches.TopForProfile(ctx, profileID, limit)
}
