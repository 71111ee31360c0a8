package domain

// RuleKind names one of the eligibility rule kinds the DSL understands.
// New kinds may appear in persisted data before this binary knows about
// them; evaluation treats an unrecognized kind as an automatic pass (see
// internal/rules), never a hard failure.
type RuleKind string

const (
	RuleRegionIn         RuleKind = "region_in"
	RuleRegionNotIn      RuleKind = "region_not_in"
	RuleTeamMin          RuleKind = "team_min"
	RuleTeamMax          RuleKind = "team_max"
	RuleProfileTypeIn    RuleKind = "profile_type_in"
	RuleProfileTypeNotIn RuleKind = "profile_type_not_in"
	RuleStageIn          RuleKind = "stage_in"
	RuleStageNotIn       RuleKind = "stage_not_in"
	RuleTechAny          RuleKind = "tech_any"
	RuleTechAll          RuleKind = "tech_all"
	RuleIndustryAny      RuleKind = "industry_any"
	RuleStudentOnly      RuleKind = "student_only"
	RuleNotStudentOnly   RuleKind = "not_student_only"
	RuleRemoteOK         RuleKind = "remote_ok"
)

// EvalMode controls how a RuleSet's individual rule outcomes combine into
// one eligibility verdict.
type EvalMode string

const (
	EvalAll EvalMode = "all"
	EvalAny EvalMode = "any"
)

// Rule is one clause of an eligibility RuleSet. Values holds string
// operands (region/profile-type/stage/tech/industry lists); IntValue holds
// the operand for team_min/team_max. Fields that don't apply to Kind are
// simply left zero.
type Rule struct {
	Kind     RuleKind `bson:"kind" json:"kind"`
	Values   []string `bson:"values,omitempty" json:"values,omitempty"`
	IntValue int      `bson:"int_value,omitempty" json:"int_value,omitempty"`
}

// RuleSet is a host- or opportunity-authored eligibility specification.
type RuleSet struct {
	Mode  EvalMode `bson:"mode" json:"mode"`
	Rules []Rule   `bson:"rules" json:"rules"`
}
