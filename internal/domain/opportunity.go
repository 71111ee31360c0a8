// Package domain holds the core Opportunity Radar data model: the shapes
// ingestion, embedding, and ranking all read and write, independent of how
// any of them are persisted or transported.
package domain

import "time"

// OpportunityType classifies what kind of opportunity a record represents.
type OpportunityType string

const (
	OpportunityHackathon   OpportunityType = "hackathon"
	OpportunityGrant       OpportunityType = "grant"
	OpportunityCompetition OpportunityType = "competition"
	OpportunityBounty      OpportunityType = "bounty"
	OpportunityAccelerator OpportunityType = "accelerator"
	OpportunityOther       OpportunityType = "other"
)

// Valid reports whether t is one of the known opportunity types.
func (t OpportunityType) Valid() bool {
	switch t {
	case OpportunityHackathon, OpportunityGrant, OpportunityCompetition,
		OpportunityBounty, OpportunityAccelerator, OpportunityOther:
		return true
	}
	return false
}

// Format describes how an opportunity is run.
type Format string

const (
	FormatOnline   Format = "online"
	FormatInPerson Format = "in-person"
	FormatHybrid   Format = "hybrid"
	FormatUnknown  Format = ""
)

// Prize is one line item of a prize structure (e.g. "1st place: $5,000").
type Prize struct {
	Rank        string  `bson:"rank" json:"rank"`
	Description string  `bson:"description" json:"description"`
	Amount      float64 `bson:"amount,omitempty" json:"amount,omitempty"`
	Currency    string  `bson:"currency,omitempty" json:"currency,omitempty"`
}

// Location is the geographic context of an opportunity. All fields are
// optional since many sources only report a subset.
type Location struct {
	City    string `bson:"city,omitempty" json:"city,omitempty"`
	Country string `bson:"country,omitempty" json:"country,omitempty"`
	Region  string `bson:"region,omitempty" json:"region,omitempty"`
}

// URLs groups the outbound links a detail page exposes.
type URLs struct {
	Website      string `bson:"website_url,omitempty" json:"website_url,omitempty"`
	Registration string `bson:"registration_url,omitempty" json:"registration_url,omitempty"`
	Logo         string `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	Banner       string `bson:"banner_url,omitempty" json:"banner_url,omitempty"`
	Video        string `bson:"video_url,omitempty" json:"video_url,omitempty"`
}

// SocialLinks holds the community channels a host publishes for an
// opportunity (discord, slack, twitter, ...), keyed by platform name.
type SocialLinks map[string]string

// FAQEntry is a single question/answer pair surfaced by a host.
type FAQEntry struct {
	Question string `bson:"question" json:"question"`
	Answer   string `bson:"answer" json:"answer"`
}

// JudgingCriterion is one weighted dimension judges score submissions on.
type JudgingCriterion struct {
	Name   string  `bson:"name" json:"name"`
	Weight float64 `bson:"weight,omitempty" json:"weight,omitempty"`
}

// Resource is an API, dataset, or tool a host makes available to entrants.
type Resource struct {
	Name string `bson:"name" json:"name"`
	URL  string `bson:"url,omitempty" json:"url,omitempty"`
	Kind string `bson:"kind,omitempty" json:"kind,omitempty"`
}

// Opportunity is a single hackathon, grant, bounty, competition, or
// accelerator record aggregated from an external source.
//
// ID, Source, and ExternalID together satisfy invariant I1: (Source,
// ExternalID) is unique across the collection, and ID is the stable
// internal handle everything else (Match, embeddings) refers back to.
type Opportunity struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	HostID     string `bson:"host_id,omitempty" json:"host_id,omitempty"`
	Source     string `bson:"source" json:"source"`
	ExternalID string `bson:"external_id" json:"external_id"`

	Title            string          `bson:"title" json:"title"`
	Description      string          `bson:"description,omitempty" json:"description,omitempty"`
	ShortDescription string          `bson:"short_description,omitempty" json:"short_description,omitempty"`
	Type             OpportunityType `bson:"opportunity_type" json:"opportunity_type"`
	Format           Format          `bson:"format,omitempty" json:"format,omitempty"`
	Location         *Location       `bson:"location,omitempty" json:"location,omitempty"`
	IsOnline         bool            `bson:"is_online" json:"is_online"`
	URLs             URLs            `bson:"urls" json:"urls"`

	Themes       []string `bson:"themes,omitempty" json:"themes,omitempty"`
	Technologies []string `bson:"technologies,omitempty" json:"technologies,omitempty"`

	Prizes          []Prize `bson:"prizes,omitempty" json:"prizes,omitempty"`
	TotalPrizeValue float64 `bson:"total_prize_value,omitempty" json:"total_prize_value,omitempty"`
	Currency        string  `bson:"currency,omitempty" json:"currency,omitempty"`

	TeamSizeMin *int `bson:"team_size_min,omitempty" json:"team_size_min,omitempty"`
	TeamSizeMax *int `bson:"team_size_max,omitempty" json:"team_size_max,omitempty"`

	ApplicationDeadline *time.Time `bson:"application_deadline,omitempty" json:"application_deadline,omitempty"`
	EventStartDate       *time.Time `bson:"event_start_date,omitempty" json:"event_start_date,omitempty"`
	EventEndDate         *time.Time `bson:"event_end_date,omitempty" json:"event_end_date,omitempty"`
	ResultsDate          *time.Time `bson:"results_date,omitempty" json:"results_date,omitempty"`

	IsStudentOnly bool `bson:"is_student_only" json:"is_student_only"`
	IsFeatured    bool `bson:"is_featured" json:"is_featured"`
	IsActive      bool `bson:"is_active" json:"is_active"`

	// Extended detail fields, present in the original aggregator's record
	// model but not carried by every adapter; nil/empty is valid.
	Sponsors               []string           `bson:"sponsors,omitempty" json:"sponsors,omitempty"`
	Judges                 []string           `bson:"judges,omitempty" json:"judges,omitempty"`
	Requirements           []string           `bson:"requirements,omitempty" json:"requirements,omitempty"`
	EligibilityCriteria    []string           `bson:"eligibility_criteria,omitempty" json:"eligibility_criteria,omitempty"`
	SubmissionRequirements []string           `bson:"submission_requirements,omitempty" json:"submission_requirements,omitempty"`
	JudgingCriteria        []JudgingCriterion `bson:"judging_criteria,omitempty" json:"judging_criteria,omitempty"`
	MentorInfo             []string           `bson:"mentor_info,omitempty" json:"mentor_info,omitempty"`
	Resources              []Resource         `bson:"resources,omitempty" json:"resources,omitempty"`
	FAQ                    []FAQEntry         `bson:"faq,omitempty" json:"faq,omitempty"`
	DifficultyLevel        string             `bson:"difficulty_level,omitempty" json:"difficulty_level,omitempty"`
	ExpectedDurationHours  int                `bson:"expected_duration_hours,omitempty" json:"expected_duration_hours,omitempty"`
	AgeRequirement         string             `bson:"age_requirement,omitempty" json:"age_requirement,omitempty"`
	GeographicRestriction  string             `bson:"geographic_restriction,omitempty" json:"geographic_restriction,omitempty"`
	SocialLinks            SocialLinks        `bson:"social_links,omitempty" json:"social_links,omitempty"`
	ParticipantCount       int                `bson:"participant_count,omitempty" json:"participant_count,omitempty"`

	RawData map[string]any `bson:"raw_data,omitempty" json:"-"`

	// Embedding is the 1536-dim text-embedding-3-small vector for this
	// record, or nil if it has not been generated yet. Preserved across
	// content updates (see internal/store upsert semantics).
	Embedding []float32 `bson:"embedding,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsOpen reports whether the opportunity is still accepting applications.
// Derived, never stored: an application_deadline in the past always closes
// an opportunity regardless of IsActive.
func (o *Opportunity) IsOpen(now time.Time) bool {
	if o.ApplicationDeadline != nil {
		return now.Before(*o.ApplicationDeadline)
	}
	return o.IsActive
}

// DaysUntilDeadline returns the whole days remaining until the application
// deadline, or nil if there is none. Never negative; a past deadline
// returns 0.
func (o *Opportunity) DaysUntilDeadline(now time.Time) *int {
	if o.ApplicationDeadline == nil {
		return nil
	}
	d := int(o.ApplicationDeadline.Sub(now).Hours() / 24)
	if d < 0 {
		d = 0
	}
	return &d
}

// Host is the organization or platform behind one or more opportunities.
type Host struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Slug        string    `bson:"slug" json:"slug"`
	WebsiteURL  string    `bson:"website_url,omitempty" json:"website_url,omitempty"`
	LogoURL     string    `bson:"logo_url,omitempty" json:"logo_url,omitempty"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
