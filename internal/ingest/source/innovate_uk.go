package source

import (
	"context"

	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/normalize"
)

// InnovateUKAdapter surfaces recurring Innovate UK / UKRI funding
// programmes as a curated table. The search page
// (apply-for-innovation-funding.service.gov.uk) renders its competition
// list client-side with no public JSON API, the same constraint
// original_source/.../scrapers/innovate_uk_scraper.py hits before falling
// back to its own _get_known_competitions table — there's no listing
// payload worth an HTTP round trip to parse.
type InnovateUKAdapter struct{}

// NewInnovateUKAdapter constructs the adapter.
func NewInnovateUKAdapter() *InnovateUKAdapter { return &InnovateUKAdapter{} }

func (a *InnovateUKAdapter) SourceName() string { return "innovate_uk" }
func (a *InnovateUKAdapter) BaseURL() string {
	return "https://apply-for-innovation-funding.service.gov.uk/competition/search"
}
func (a *InnovateUKAdapter) RequestDelay() float64 { return 2.0 }

// ScrapeList returns the curated programme table on page 1 only.
func (a *InnovateUKAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	if page > 1 {
		return adapter.ScrapeResult{HasMore: false}, nil
	}
	records := []normalize.Raw{
		{
			Source: "innovate_uk", ExternalID: "iuk-smart-grant",
			Title:       "Innovate UK Smart Grants",
			URL:         "https://www.ukri.org/opportunity/innovate-uk-smart-grants/",
			Description: "Innovate UK's open funding competition for game-changing, commercially viable innovations.",
			IsOnline:    true, Location: "United Kingdom", Regions: []string{"UK"},
			Themes: []string{"innovation", "research"}, Tags: []string{"grant", "innovation"},
			HostName: "Innovate UK", HostURL: "https://www.ukri.org/councils/innovate-uk",
			RawData: map[string]any{"fallback": true},
		},
		{
			Source: "innovate_uk", ExternalID: "iuk-eurostars",
			Title:       "Eurostars UK",
			URL:         "https://www.ukri.org/opportunity/apply-for-funding-for-international-collaborative-rd-eurostars/",
			Description: "Joint UK/EU funding for collaborative R&D projects led by innovative SMEs.",
			IsOnline:    true, Location: "United Kingdom", Regions: []string{"UK", "EU"},
			Themes: []string{"innovation", "research", "collaboration"}, Tags: []string{"grant", "collaboration"},
			HostName: "Innovate UK", HostURL: "https://www.ukri.org/councils/innovate-uk",
			RawData: map[string]any{"fallback": true},
		},
		{
			Source: "innovate_uk", ExternalID: "iuk-infrastructure-fund",
			Title:       "Infrastructure Fund Competition",
			URL:         "https://www.ukri.org/councils/innovate-uk/",
			Description: "Support for infrastructure projects with strong potential for economic growth.",
			IsOnline:    true, Location: "United Kingdom", Regions: []string{"UK"},
			Themes: []string{"infrastructure", "growth"}, Tags: []string{"grant", "infrastructure"},
			HostName: "Innovate UK", HostURL: "https://www.ukri.org/councils/innovate-uk",
			RawData: map[string]any{"fallback": true},
		},
	}
	return adapter.ScrapeResult{Records: records, HasMore: false}, nil
}

// ScrapeDetail is a no-op: the curated table carries everything this
// adapter extracts.
func (a *InnovateUKAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}
