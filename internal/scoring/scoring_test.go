package scoring

import (
	"testing"
	"time"

	"github.com/opportunityradar/radar/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarityFallback(t *testing.T) {
	assert.Equal(t, 0.5, CosineSimilarity(nil, []float32{1, 2}))
	assert.Equal(t, 0.5, CosineSimilarity([]float32{0, 0}, []float32{1, 2}))
}

func TestCosineSimilarityIdentical(t *testing.T) {
	v := []float32{1, 0, 0}
	assert.InDelta(t, 1.0, CosineSimilarity(v, v), 1e-9)
}

func TestTimeFitBoundaries(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0.7, TimeFit(nil, now))

	cases := []struct {
		days int
		want float64
	}{
		{-1, 0.0},
		{3, 0.3},
		{7, 0.7},
		{14, 1.0},
		{30, 0.9},
		{60, 0.7},
		{90, 0.5},
		{120, 0.3},
	}
	for _, c := range cases {
		deadline := now.Add(time.Duration(c.days) * 24 * time.Hour)
		assert.Equal(t, c.want, TimeFit(&deadline, now))
	}
}

func TestTeamFitWithinRange(t *testing.T) {
	min, max := 2, 5
	assert.Equal(t, 1.0, TeamFit(3, &min, &max))
}

func TestTeamFitBelowMin(t *testing.T) {
	min := 4
	assert.InDelta(t, 0.7, TeamFit(3, &min, nil), 1e-9)
}

func TestTeamFitAboveMax(t *testing.T) {
	max := 4
	assert.InDelta(t, 0.4, TeamFit(6, nil, &max), 1e-9)
}

func TestTeamFitFloorsAtZero(t *testing.T) {
	min := 10
	assert.Equal(t, 0.0, TeamFit(1, &min, nil))
}

func TestIntentFitNoIntents(t *testing.T) {
	assert.Equal(t, 0.5, IntentFit(nil, domain.OpportunityHackathon))
}

func TestIntentFitExactMatch(t *testing.T) {
	got := IntentFit([]string{"learning"}, domain.OpportunityHackathon)
	assert.Equal(t, 1.0, got)
}

func TestIntentFitNoMatch(t *testing.T) {
	got := IntentFit([]string{"equity"}, domain.OpportunityHackathon)
	assert.Equal(t, 0.0, got)
}

func TestIntentFitCapsAtOne(t *testing.T) {
	got := IntentFit([]string{"learning", "exposure"}, domain.OpportunityHackathon)
	assert.Equal(t, 1.0, got)
}

func TestScoreCombinesWeightedFactors(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	deadline := now.Add(10 * 24 * time.Hour)
	min, max := 1, 4

	profile := &domain.Profile{
		Type:      domain.ProfileStudent,
		TeamSize:  2,
		IsStudent: true,
		Intents:   []string{"learning"},
	}
	opportunity := &domain.Opportunity{
		Type:                domain.OpportunityHackathon,
		TeamSizeMin:         &min,
		TeamSizeMax:         &max,
		ApplicationDeadline: &deadline,
		IsStudentOnly:       true,
	}

	result := Score(profile, opportunity, now)

	assert.True(t, result.Eligible)
	assert.Equal(t, 0.5, result.Breakdown.Factors["semantic"].Score)
	assert.Equal(t, 1.0, result.Breakdown.Factors["team"].Score)
	assert.Equal(t, 1.0, result.Breakdown.Factors["intent"].Score)
	assert.Contains(t, result.MatchReasons, "Meets all eligibility requirements")
	assert.Contains(t, result.MatchReasons, "Perfect team size match")
	assert.Greater(t, result.Breakdown.Total, 0.0)
}

func TestScoreIneligibleStillComputesTotal(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	min := 5

	profile := &domain.Profile{TeamSize: 1}
	opportunity := &domain.Opportunity{
		Type:        domain.OpportunityGrant,
		TeamSizeMin: &min,
	}

	result := Score(profile, opportunity, now)

	assert.False(t, result.Eligible)
	assert.NotContains(t, result.MatchReasons, "Meets all eligibility requirements")
}
