package rules

import (
	"fmt"
	"strings"

	"github.com/opportunityradar/radar/internal/domain"
)

// RuleResult is the outcome of evaluating one Rule.
type RuleResult struct {
	Kind       domain.RuleKind
	Passed     bool
	Reason     string
	Suggestion string
}

// EvalResult is the outcome of evaluating an entire RuleSet.
type EvalResult struct {
	Eligible    bool
	Score       float64
	Passed      []RuleResult
	Failed      []RuleResult
	Suggestions []string
}

// Reasons returns every rule's reason text, passed first, in evaluation
// order — the flattened explanation surfaced to a caller.
func (r EvalResult) Reasons() []string {
	out := make([]string, 0, len(r.Passed)+len(r.Failed))
	for _, p := range r.Passed {
		out = append(out, p.Reason)
	}
	for _, f := range r.Failed {
		out = append(out, f.Reason)
	}
	return out
}

// Evaluate scores profile against opportunity using dsl if given,
// otherwise synthesizes a RuleSet from opportunity's own fields. Mode
// "any" is eligible once at least one rule passes; "all" (the default,
// and the only mode synthesis ever produces) requires every rule to pass.
func Evaluate(profile ProfileContext, opportunity OpportunityContext, dsl *domain.RuleSet) EvalResult {
	var ruleSet domain.RuleSet
	if dsl != nil && len(dsl.Rules) > 0 {
		ruleSet = *dsl
		if ruleSet.Mode == "" {
			ruleSet.Mode = domain.EvalAll
		}
	} else {
		ruleSet = domain.RuleSet{Mode: domain.EvalAll, Rules: synthesizeRules(opportunity)}
	}

	if len(ruleSet.Rules) == 0 {
		return EvalResult{Eligible: true, Score: 1.0}
	}

	result := EvalResult{Score: 0}
	var suggestions []string
	passedCount := 0
	for _, rule := range ruleSet.Rules {
		rr := evalRule(rule, profile, opportunity)
		if rr.Passed {
			passedCount++
			result.Passed = append(result.Passed, rr)
		} else {
			result.Failed = append(result.Failed, rr)
			if rr.Suggestion != "" {
				suggestions = append(suggestions, rr.Suggestion)
			}
		}
	}

	result.Score = float64(passedCount) / float64(len(ruleSet.Rules))
	result.Suggestions = suggestions
	if ruleSet.Mode == domain.EvalAny {
		result.Eligible = passedCount > 0
	} else {
		result.Eligible = len(result.Failed) == 0
	}
	return result
}

// evalRule dispatches one rule to its handler. An unrecognized Kind
// always passes — new rule kinds introduced by a future release must not
// retroactively lock out profiles this binary doesn't understand yet.
func evalRule(rule domain.Rule, p ProfileContext, o OpportunityContext) RuleResult {
	switch rule.Kind {
	case domain.RuleRegionIn:
		return evalRegionIn(rule, p)
	case domain.RuleRegionNotIn:
		return evalRegionNotIn(rule, p)
	case domain.RuleTeamMin:
		return evalTeamMin(rule, p)
	case domain.RuleTeamMax:
		return evalTeamMax(rule, p)
	case domain.RuleProfileTypeIn:
		return evalProfileTypeIn(rule, p)
	case domain.RuleProfileTypeNotIn:
		return evalProfileTypeNotIn(rule, p)
	case domain.RuleStageIn:
		return evalStageIn(rule, p)
	case domain.RuleStageNotIn:
		return evalStageNotIn(rule, p)
	case domain.RuleTechAny:
		return evalTechAny(rule, p)
	case domain.RuleTechAll:
		return evalTechAll(rule, p)
	case domain.RuleIndustryAny:
		return evalIndustryAny(rule, p)
	case domain.RuleStudentOnly:
		return evalStudentOnly(rule, p)
	case domain.RuleNotStudentOnly:
		return evalNotStudentOnly(rule, p)
	case domain.RuleRemoteOK:
		return evalRemoteOK(rule, p, o)
	default:
		return RuleResult{Kind: rule.Kind, Passed: true, Reason: fmt.Sprintf("Unknown/Invalid rule type: %s", rule.Kind)}
	}
}

// containsFold reports whether any of haystack case-insensitively equals
// needle.
func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

// anyOverlapFold reports whether a and b share any case-insensitive
// element, and returns the overlapping values (from a's casing).
func anyOverlapFold(a, b []string) []string {
	var overlap []string
	for _, x := range a {
		if containsFold(b, x) {
			overlap = append(overlap, x)
		}
	}
	return overlap
}

func allFold(needles, haystack []string) bool {
	for _, n := range needles {
		if !containsFold(haystack, n) {
			return false
		}
	}
	return true
}
