package match

import (
	"testing"
	"time"

	"github.com/opportunityradar/radar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankCandidatesFiltersBelowThreshold(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := &domain.Profile{TeamSize: 2}
	candidates := []domain.Opportunity{
		{ID: "a", Type: domain.OpportunityHackathon},
		{ID: "b", Type: domain.OpportunityGrant},
	}

	ranked := rankCandidates(profile, candidates, 10.0, now)
	assert.Empty(t, ranked)
}

func TestRankCandidatesOrdersByScoreDescending(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	min1, max1 := 1, 2
	min2, max2 := 10, 20
	profile := &domain.Profile{TeamSize: 2, Intents: []string{"learning"}}
	candidates := []domain.Opportunity{
		{ID: "far-off-team", Type: domain.OpportunityGrant, TeamSizeMin: &min2, TeamSizeMax: &max2},
		{ID: "good-fit", Type: domain.OpportunityHackathon, TeamSizeMin: &min1, TeamSizeMax: &max1},
	}

	ranked := rankCandidates(profile, candidates, 0.0, now)
	require.Len(t, ranked, 2)
	assert.Equal(t, "good-fit", ranked[0].opportunity.ID)
	assert.GreaterOrEqual(t, ranked[0].result.Breakdown.Total, ranked[1].result.Breakdown.Total)
}
