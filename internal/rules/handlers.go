package rules

import (
	"fmt"

	"github.com/opportunityradar/radar/internal/domain"
)

func evalRegionIn(rule domain.Rule, p ProfileContext) RuleResult {
	if containsFold(rule.Values, "global") {
		return RuleResult{Kind: rule.Kind, Passed: true, Reason: "Open to all regions"}
	}
	for _, region := range p.Regions {
		if containsFold(rule.Values, region) {
			return RuleResult{Kind: rule.Kind, Passed: true, Reason: fmt.Sprintf("Region %s is eligible", region)}
		}
	}
	return RuleResult{
		Kind: rule.Kind, Passed: false,
		Reason:     fmt.Sprintf("None of your regions (%v) are in the eligible list", p.Regions),
		Suggestion: "Check if a regional edition of this opportunity is open to you",
	}
}

func evalRegionNotIn(rule domain.Rule, p ProfileContext) RuleResult {
	for _, region := range p.Regions {
		if containsFold(rule.Values, region) {
			return RuleResult{
				Kind: rule.Kind, Passed: false,
				Reason:     fmt.Sprintf("Region %s is excluded", region),
				Suggestion: "This opportunity is not open to your region",
			}
		}
	}
	return RuleResult{Kind: rule.Kind, Passed: true, Reason: "No excluded regions apply to you"}
}

func evalTeamMin(rule domain.Rule, p ProfileContext) RuleResult {
	if p.TeamSize >= rule.IntValue {
		return RuleResult{Kind: rule.Kind, Passed: true, Reason: fmt.Sprintf("Team size %d meets the minimum of %d", p.TeamSize, rule.IntValue)}
	}
	return RuleResult{
		Kind: rule.Kind, Passed: false,
		Reason:     fmt.Sprintf("Team size %d is below the minimum of %d", p.TeamSize, rule.IntValue),
		Suggestion: fmt.Sprintf("Find %d more teammate(s) to be eligible", rule.IntValue-p.TeamSize),
	}
}

func evalTeamMax(rule domain.Rule, p ProfileContext) RuleResult {
	if p.TeamSize <= rule.IntValue {
		return RuleResult{Kind: rule.Kind, Passed: true, Reason: fmt.Sprintf("Team size %d is within the maximum of %d", p.TeamSize, rule.IntValue)}
	}
	return RuleResult{
		Kind: rule.Kind, Passed: false,
		Reason:     fmt.Sprintf("Team size %d exceeds the maximum of %d", p.TeamSize, rule.IntValue),
		Suggestion: fmt.Sprintf("Split into teams of %d or fewer", rule.IntValue),
	}
}

func evalProfileTypeIn(rule domain.Rule, p ProfileContext) RuleResult {
	if containsFold(rule.Values, string(p.Type)) {
		return RuleResult{Kind: rule.Kind, Passed: true, Reason: fmt.Sprintf("Profile type %s is eligible", p.Type)}
	}
	return RuleResult{
		Kind: rule.Kind, Passed: false,
		Reason: fmt.Sprintf("Profile type %s is not in the eligible list", p.Type),
	}
}

func evalProfileTypeNotIn(rule domain.Rule, p ProfileContext) RuleResult {
	if containsFold(rule.Values, string(p.Type)) {
		return RuleResult{
			Kind: rule.Kind, Passed: false,
			Reason: fmt.Sprintf("Profile type %s is excluded", p.Type),
		}
	}
	return RuleResult{Kind: rule.Kind, Passed: true, Reason: "Your profile type is not excluded"}
}

func evalStageIn(rule domain.Rule, p ProfileContext) RuleResult {
	if p.Stage != "" && containsFold(rule.Values, p.Stage) {
		return RuleResult{Kind: rule.Kind, Passed: true, Reason: fmt.Sprintf("Stage %s is eligible", p.Stage)}
	}
	return RuleResult{
		Kind: rule.Kind, Passed: false,
		Reason: fmt.Sprintf("Stage %q is not in the eligible list", p.Stage),
	}
}

func evalStageNotIn(rule domain.Rule, p ProfileContext) RuleResult {
	if p.Stage != "" && containsFold(rule.Values, p.Stage) {
		return RuleResult{
			Kind: rule.Kind, Passed: false,
			Reason: fmt.Sprintf("Stage %s is excluded", p.Stage),
		}
	}
	return RuleResult{Kind: rule.Kind, Passed: true, Reason: "Your stage is not excluded"}
}

func evalTechAny(rule domain.Rule, p ProfileContext) RuleResult {
	overlap := anyOverlapFold(p.Skills, rule.Values)
	if len(overlap) > 0 {
		return RuleResult{Kind: rule.Kind, Passed: true, Reason: fmt.Sprintf("Matches on: %v", overlap)}
	}
	return RuleResult{
		Kind: rule.Kind, Passed: false,
		Reason:     fmt.Sprintf("None of your skills overlap with %v", rule.Values),
		Suggestion: fmt.Sprintf("Consider learning one of: %v", rule.Values),
	}
}

func evalTechAll(rule domain.Rule, p ProfileContext) RuleResult {
	if allFold(rule.Values, p.Skills) {
		return RuleResult{Kind: rule.Kind, Passed: true, Reason: fmt.Sprintf("All required skills present: %v", rule.Values)}
	}
	return RuleResult{
		Kind: rule.Kind, Passed: false,
		Reason:     fmt.Sprintf("Missing one or more required skills from %v", rule.Values),
		Suggestion: fmt.Sprintf("Required skills: %v", rule.Values),
	}
}

func evalIndustryAny(rule domain.Rule, p ProfileContext) RuleResult {
	overlap := anyOverlapFold(p.Industries, rule.Values)
	if len(overlap) > 0 {
		return RuleResult{Kind: rule.Kind, Passed: true, Reason: fmt.Sprintf("Matches industries: %v", overlap)}
	}
	return RuleResult{
		Kind: rule.Kind, Passed: false,
		Reason: fmt.Sprintf("No overlap with eligible industries %v", rule.Values),
	}
}

func evalStudentOnly(rule domain.Rule, p ProfileContext) RuleResult {
	if p.IsStudent || p.Type == domain.ProfileStudent {
		return RuleResult{Kind: rule.Kind, Passed: true, Reason: "Student status confirmed"}
	}
	return RuleResult{
		Kind: rule.Kind, Passed: false,
		Reason:     "This opportunity is restricted to students",
		Suggestion: "This hackathon is restricted to students",
	}
}

func evalNotStudentOnly(rule domain.Rule, p ProfileContext) RuleResult {
	return RuleResult{Kind: rule.Kind, Passed: true, Reason: "No student restriction applies"}
}

// evalRemoteOK passes if either the opportunity allows remote
// participation or the profile is willing to join remotely; it fails only
// when both sides require in-person attendance.
func evalRemoteOK(rule domain.Rule, p ProfileContext, o OpportunityContext) RuleResult {
	if o.IsOnline || p.RemoteOnly {
		return RuleResult{Kind: rule.Kind, Passed: true, Reason: "Remote participation allowed"}
	}
	return RuleResult{
		Kind: rule.Kind, Passed: false,
		Reason:     "In-person attendance required",
		Suggestion: "This requires in-person attendance",
	}
}
