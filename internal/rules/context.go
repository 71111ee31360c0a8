// Package rules implements the eligibility RuleEngine (C7): a
// tagged-variant DSL with 14 rule kinds, evaluated in "all" or "any" mode,
// forward-compatible with rule kinds this binary doesn't recognize —
// ported line-for-line (reasons, suggestions, unknown-kind handling) from
// original_source/.../matching/dsl_engine.py.
package rules

import "github.com/opportunityradar/radar/internal/domain"

// ProfileContext is the subset of a Profile the engine evaluates rules
// against.
type ProfileContext struct {
	Regions     []string
	TeamSize    int
	Type        domain.ProfileType
	Stage       string
	Skills      []string
	Industries  []string
	IsStudent   bool
	RemoteOnly  bool
}

// OpportunityContext is the subset of an Opportunity the engine evaluates
// rules against, and from which a RuleSet is synthesized when the
// opportunity has no explicit rules_dsl.
type OpportunityContext struct {
	Regions       []string
	TeamSizeMin   *int
	TeamSizeMax   *int
	ProfileTypes  []domain.ProfileType
	Stages        []string
	Technologies  []string
	Industries    []string
	IsStudentOnly bool
	IsOnline      bool
}
