package normalize

import "github.com/opportunityradar/radar/internal/domain"

// typeBySource is the exact source→opportunity-type table the original
// persistence service applies; any source absent from this table
// classifies as domain.OpportunityOther.
var typeBySource = map[string]domain.OpportunityType{
	"devpost":           domain.OpportunityHackathon,
	"mlh":               domain.OpportunityHackathon,
	"ethglobal":         domain.OpportunityHackathon,
	"hackerearth":       domain.OpportunityHackathon,
	"kaggle":            domain.OpportunityCompetition,
	"grants_gov":        domain.OpportunityGrant,
	"sbir":              domain.OpportunityGrant,
	"eu_horizon":        domain.OpportunityGrant,
	"innovate_uk":       domain.OpportunityGrant,
	"opensource_grants": domain.OpportunityGrant,
	"hackerone":         domain.OpportunityBounty,
	"accelerators":      domain.OpportunityAccelerator,
	"ycombinator":       domain.OpportunityAccelerator,
}

// TypeForSource classifies a source name into an OpportunityType.
func TypeForSource(source string) domain.OpportunityType {
	if t, ok := typeBySource[source]; ok {
		return t
	}
	return domain.OpportunityOther
}
