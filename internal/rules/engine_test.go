package rules

import (
	"testing"

	"github.com/opportunityradar/radar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateSynthesizedAllMode(t *testing.T) {
	profile := ProfileContext{Regions: []string{"US"}, TeamSize: 2, Skills: []string{"Go", "React"}}
	opp := OpportunityContext{
		Regions:      []string{"US", "CA"},
		TeamSizeMin:  intPtr(1),
		TeamSizeMax:  intPtr(4),
		Technologies: []string{"Go", "Python"},
	}

	result := Evaluate(profile, opp, nil)
	assert.True(t, result.Eligible)
	assert.Equal(t, 1.0, result.Score)
}

func TestEvaluateFailsOneRuleInAllMode(t *testing.T) {
	profile := ProfileContext{Regions: []string{"JP"}, TeamSize: 1}
	opp := OpportunityContext{Regions: []string{"US", "CA"}, TeamSizeMin: intPtr(2)}

	result := Evaluate(profile, opp, nil)
	assert.False(t, result.Eligible)
	require.Len(t, result.Failed, 2)
}

func TestEvaluateGlobalRegionSkipsRegionRule(t *testing.T) {
	profile := ProfileContext{Regions: []string{"JP"}}
	opp := OpportunityContext{Regions: []string{"Global"}}

	result := Evaluate(profile, opp, nil)
	assert.True(t, result.Eligible)
	assert.Empty(t, result.Passed)
	assert.Empty(t, result.Failed)
}

func TestEvaluateAnyMode(t *testing.T) {
	profile := ProfileContext{Regions: []string{"JP"}}
	dsl := &domain.RuleSet{
		Mode: domain.EvalAny,
		Rules: []domain.Rule{
			{Kind: domain.RuleRegionIn, Values: []string{"US"}},
			{Kind: domain.RuleRegionIn, Values: []string{"JP"}},
		},
	}
	result := Evaluate(profile, OpportunityContext{}, dsl)
	assert.True(t, result.Eligible)
}

func TestEvaluateUnknownRuleKindPasses(t *testing.T) {
	profile := ProfileContext{}
	dsl := &domain.RuleSet{
		Mode:  domain.EvalAll,
		Rules: []domain.Rule{{Kind: "some_future_rule"}},
	}
	result := Evaluate(profile, OpportunityContext{}, dsl)
	assert.True(t, result.Eligible)
	require.Len(t, result.Passed, 1)
}

func intPtr(v int) *int { return &v }
