// Package normalize turns a source adapter's Raw record into normalized
// domain.Opportunity fields: source→type classification, prize-amount
// parsing, and date-range parsing. Pure functions, no I/O; a field that
// fails to parse is left nil/zero and normalization continues rather than
// discarding the record.
package normalize

// Raw is what a SourceAdapter hands the normalizer: the adapter's own
// best-effort extraction from a listing or detail page, before any
// cross-source cleanup.
type Raw struct {
	Source     string
	ExternalID string
	Title      string
	URL        string
	Description string
	ImageURL   string
	RawData    map[string]any

	StartDateRaw             string
	EndDateRaw                string
	SubmissionDeadlineRaw     string
	RegistrationDeadlineRaw   string

	Location   string
	IsOnline   bool
	Regions    []string

	TeamMin *int
	TeamMax *int

	PrizesRaw         []string
	TotalPrizeRaw     string
	PrizeCurrencyHint string

	Tags      []string
	Themes    []string
	TechStack []string

	HostName string
	HostURL  string

	EligibilityRules []string
	StudentOnly      bool
}
