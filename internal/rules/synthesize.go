package rules

import "github.com/opportunityradar/radar/internal/domain"

// synthesizeRules builds an implicit RuleSet from an opportunity's own
// fields when it carries no explicit rules_dsl, matching
// dsl_engine.py's _build_rules_from_context: region_in is skipped when
// the opportunity lists "Global" among its regions, and every other
// applicable field becomes one rule, always combined in "all" mode.
func synthesizeRules(o OpportunityContext) []domain.Rule {
	var rules []domain.Rule

	if len(o.Regions) > 0 && !containsFold(o.Regions, "global") {
		rules = append(rules, domain.Rule{Kind: domain.RuleRegionIn, Values: o.Regions})
	}
	if o.TeamSizeMin != nil {
		rules = append(rules, domain.Rule{Kind: domain.RuleTeamMin, IntValue: *o.TeamSizeMin})
	}
	if o.TeamSizeMax != nil {
		rules = append(rules, domain.Rule{Kind: domain.RuleTeamMax, IntValue: *o.TeamSizeMax})
	}
	if o.IsStudentOnly {
		rules = append(rules, domain.Rule{Kind: domain.RuleStudentOnly})
	}
	if len(o.ProfileTypes) > 0 {
		values := make([]string, len(o.ProfileTypes))
		for i, t := range o.ProfileTypes {
			values[i] = string(t)
		}
		rules = append(rules, domain.Rule{Kind: domain.RuleProfileTypeIn, Values: values})
	}
	if len(o.Stages) > 0 {
		rules = append(rules, domain.Rule{Kind: domain.RuleStageIn, Values: o.Stages})
	}
	if len(o.Technologies) > 0 {
		rules = append(rules, domain.Rule{Kind: domain.RuleTechAny, Values: o.Technologies})
	}
	if len(o.Industries) > 0 {
		rules = append(rules, domain.Rule{Kind: domain.RuleIndustryAny, Values: o.Industries})
	}

	return rules
}
