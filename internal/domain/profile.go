package domain

import "time"

// ProfileType classifies the kind of participant a Profile represents.
type ProfileType string

const (
	ProfileStudent      ProfileType = "student"
	ProfileProfessional ProfileType = "professional"
	ProfileHobbyist     ProfileType = "hobbyist"
	ProfileResearcher   ProfileType = "researcher"
	ProfileFounder      ProfileType = "founder"
)

// Profile is the subset of a user's matching-relevant attributes the
// ranking engine reads. Authentication, ownership, and every other
// CRUD-facing field live outside this core and are not modeled here.
type Profile struct {
	ID          string      `bson:"_id,omitempty" json:"id"`
	Type        ProfileType `bson:"profile_type" json:"profile_type"`
	Regions     []string    `bson:"regions,omitempty" json:"regions,omitempty"`
	TeamSize    int         `bson:"team_size" json:"team_size"`
	Stage       string      `bson:"stage,omitempty" json:"stage,omitempty"`
	Skills      []string    `bson:"skills,omitempty" json:"skills,omitempty"`
	Interests   []string    `bson:"interests,omitempty" json:"interests,omitempty"`
	Industries  []string    `bson:"industries,omitempty" json:"industries,omitempty"`
	Intents     []string    `bson:"intents,omitempty" json:"intents,omitempty"`
	IsStudent   bool        `bson:"is_student" json:"is_student"`
	RemoteOnly  bool        `bson:"remote_only" json:"remote_only"`
	Embedding   []float32   `bson:"embedding,omitempty" json:"-"`
	RulesDSL    *RuleSet    `bson:"rules_dsl,omitempty" json:"rules_dsl,omitempty"`
	UpdatedAt   time.Time   `bson:"updated_at" json:"updated_at"`
}
