package scoring

import (
	"strings"

	"github.com/opportunityradar/radar/internal/domain"
)

// intentCategoryMap names which opportunity types satisfy each stated
// intent, ported from scorer.py's INTENT_CATEGORY_MAP. "bug-bounty" in the
// original source is renamed "bounty" here to match
// domain.OpportunityBounty, the type name spec.md's data model uses.
var intentCategoryMap = map[string][]string{
	"funding":    {"grant", "accelerator", "competition"},
	"exposure":   {"hackathon", "competition", "accelerator"},
	"learning":   {"hackathon", "competition"},
	"networking": {"hackathon", "accelerator", "conference"},
	"prizes":     {"hackathon", "competition", "bounty"},
	"equity":     {"accelerator"},
	"mentorship": {"accelerator"},
}

// IntentFit scores how well an opportunity's type satisfies the profile's
// stated intents: an exact category match contributes a full point, a
// substring match (the category containing one of the mapped category
// names) contributes half a point, and the total is divided by the
// number of intents and capped at 1.0. No intents, or no recognizable
// category, scores a neutral 0.5.
func IntentFit(intents []string, opportunityType domain.OpportunityType) float64 {
	if len(intents) == 0 {
		return 0.5
	}
	category := strings.ToLower(string(opportunityType))
	if category == "" {
		return 0.5
	}

	var total float64
	for _, intent := range intents {
		categories, ok := intentCategoryMap[strings.ToLower(intent)]
		if !ok {
			continue
		}
		matched := false
		for _, c := range categories {
			if c == category {
				total += 1.0
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		for _, c := range categories {
			if strings.Contains(category, c) {
				total += 0.5
				break
			}
		}
	}

	score := total / float64(len(intents))
	if score > 1.0 {
		score = 1.0
	}
	return score
}
