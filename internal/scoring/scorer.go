package scoring

import (
	"math"
	"time"

	"github.com/opportunityradar/radar/internal/domain"
	"github.com/opportunityradar/radar/internal/rules"
)

// Weights, ported from scorer.py's FACTOR_WEIGHTS, sum to 1.0.
const (
	weightSemantic    = 0.35
	weightEligibility = 0.25
	weightTime        = 0.15
	weightTeam        = 0.10
	weightIntent      = 0.15
)

// Result is the full output of scoring one Profile against one
// Opportunity: the weighted breakdown plus the eligibility verdict and the
// human-readable explanations a Match persists.
type Result struct {
	Breakdown    domain.ScoreBreakdown
	Eligible     bool
	Reasons      []string
	Suggestions  []string
	MatchReasons []string
}

// Score computes the weighted match between profile and opportunity as of
// now, running the eligibility RuleEngine and every scoring factor and
// combining them per FACTOR_WEIGHTS, rounding both the total and each
// factor to three decimal places.
func Score(profile *domain.Profile, opportunity *domain.Opportunity, now time.Time) Result {
	profileCtx := rules.ProfileContext{
		Regions:    profile.Regions,
		TeamSize:   profile.TeamSize,
		Type:       profile.Type,
		Stage:      profile.Stage,
		Skills:     profile.Skills,
		Industries: profile.Industries,
		IsStudent:  profile.IsStudent,
		RemoteOnly: profile.RemoteOnly,
	}
	opportunityCtx := rules.OpportunityContext{
		Regions:       regionsOf(opportunity),
		TeamSizeMin:   opportunity.TeamSizeMin,
		TeamSizeMax:   opportunity.TeamSizeMax,
		Technologies:  opportunity.Technologies,
		Industries:    nil,
		IsStudentOnly: opportunity.IsStudentOnly,
		IsOnline:      opportunity.IsOnline,
	}

	evalResult := rules.Evaluate(profileCtx, opportunityCtx, profile.RulesDSL)

	semantic := CosineSimilarity(profile.Embedding, opportunity.Embedding)
	eligibility := evalResult.Score
	timeFit := TimeFit(opportunity.ApplicationDeadline, now)
	teamFit := TeamFit(profile.TeamSize, opportunity.TeamSizeMin, opportunity.TeamSizeMax)
	intentFit := IntentFit(profile.Intents, opportunity.Type)

	total := semantic*weightSemantic +
		eligibility*weightEligibility +
		timeFit*weightTime +
		teamFit*weightTeam +
		intentFit*weightIntent

	breakdown := domain.ScoreBreakdown{
		Total: round3(total),
		Factors: map[string]domain.ScoreFactor{
			"semantic":    {Score: round3(semantic), Weight: weightSemantic},
			"eligibility": {Score: round3(eligibility), Weight: weightEligibility},
			"time":        {Score: round3(timeFit), Weight: weightTime},
			"team":        {Score: round3(teamFit), Weight: weightTeam},
			"intent":      {Score: round3(intentFit), Weight: weightIntent},
		},
	}

	return Result{
		Breakdown:    breakdown,
		Eligible:     evalResult.Eligible,
		Reasons:      evalResult.Reasons(),
		Suggestions:  evalResult.Suggestions,
		MatchReasons: matchReasons(semantic, eligibility, timeFit, teamFit, intentFit, evalResult.Eligible),
	}
}

// matchReasons renders the factor scores into the short human-facing
// explanations a Match surfaces, thresholds ported from scorer.py's
// calculate_match.
func matchReasons(semantic, eligibility, timeFit, teamFit, intentFit float64, eligible bool) []string {
	var out []string
	switch {
	case semantic > 0.7:
		out = append(out, "Strong skill/interest alignment")
	case semantic > 0.5:
		out = append(out, "Good skill/interest match")
	}
	if eligible {
		out = append(out, "Meets all eligibility requirements")
	}
	switch {
	case timeFit > 0.8:
		out = append(out, "Great timing to prepare and apply")
	case timeFit > 0.6:
		out = append(out, "Good timeline fit")
	}
	if teamFit == 1.0 {
		out = append(out, "Perfect team size match")
	}
	if intentFit > 0.8 {
		out = append(out, "Aligns with your goals")
	}
	return out
}

func regionsOf(o *domain.Opportunity) []string {
	if o.Location == nil || o.Location.Region == "" {
		return nil
	}
	return []string{o.Location.Region}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
