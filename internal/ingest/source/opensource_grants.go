package source

import (
	"context"

	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/normalize"
)

// OpenSourceGrantsAdapter surfaces recurring open-source funding programs
// (Google Summer of Code and similar) as a curated table, grounded on
// original_source/.../scrapers/opensource_grants_scraper.py's
// _create_gsoc_fallback.
type OpenSourceGrantsAdapter struct{}

// NewOpenSourceGrantsAdapter constructs the adapter.
func NewOpenSourceGrantsAdapter() *OpenSourceGrantsAdapter { return &OpenSourceGrantsAdapter{} }

func (a *OpenSourceGrantsAdapter) SourceName() string    { return "opensource_grants" }
func (a *OpenSourceGrantsAdapter) BaseURL() string       { return "https://summerofcode.withgoogle.com" }
func (a *OpenSourceGrantsAdapter) RequestDelay() float64 { return 1.0 }

// ScrapeList returns the GSoC fallback record on page 1 only.
func (a *OpenSourceGrantsAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	if page > 1 {
		return adapter.ScrapeResult{HasMore: false}, nil
	}
	record := normalize.Raw{
		Source:      a.SourceName(),
		ExternalID:  "gsoc-fallback",
		Title:       "Google Summer of Code",
		URL:         "https://summerofcode.withgoogle.com",
		Description: "A global program focused on bringing new contributors into open source software development.",
		IsOnline:    true,
		Themes:      []string{"open-source", "mentorship"},
		TechStack:   []string{"python", "go", "rust", "javascript", "c++"},
		HostName:    "Google Open Source",
		StudentOnly: false,
		RawData:     map[string]any{"fallback": true},
	}
	return adapter.ScrapeResult{Records: []normalize.Raw{record}, HasMore: false}, nil
}

// ScrapeDetail is a no-op: the fallback record carries everything this
// adapter can offer.
func (a *OpenSourceGrantsAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}
