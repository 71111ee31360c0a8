package source

import (
	"context"

	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/normalize"
)

// EUHorizonAdapter surfaces recurring Horizon Europe / EIC funding
// programmes as a curated table, grounded on
// original_source/.../scrapers/eu_horizon_scraper.py's
// _get_known_programmes — the EU Funding & Tenders Portal renders its
// topic search client-side and the scraper it's grounded on falls back to
// this same table whenever fewer than five topics come back from HTML
// scraping, which is most of the time.
type EUHorizonAdapter struct{}

// NewEUHorizonAdapter constructs the adapter.
func NewEUHorizonAdapter() *EUHorizonAdapter { return &EUHorizonAdapter{} }

func (a *EUHorizonAdapter) SourceName() string { return "eu_horizon" }
func (a *EUHorizonAdapter) BaseURL() string {
	return "https://ec.europa.eu/info/funding-tenders/opportunities/portal/screen/opportunities/topic-search"
}
func (a *EUHorizonAdapter) RequestDelay() float64 { return 2.0 }

// ScrapeList returns the curated programme table on page 1 only.
func (a *EUHorizonAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	if page > 1 {
		return adapter.ScrapeResult{HasMore: false}, nil
	}
	records := []normalize.Raw{
		{
			Source: "eu_horizon", ExternalID: "eic-accelerator",
			Title:       "EIC Accelerator",
			URL:         "https://eic.ec.europa.eu/eic-funding-opportunities/eic-accelerator_en",
			Description: "Supports startups and SMEs to scale up innovations. Grants up to EUR 2.5 million plus equity up to EUR 15 million.",
			IsOnline:    true, Regions: []string{"EU"}, TotalPrizeRaw: "2500000 EUR",
			Tags: []string{"eic", "startup", "scale-up", "equity"}, Themes: []string{"innovation", "startup"},
			HostName: "European Innovation Council", HostURL: "https://eic.ec.europa.eu",
			RawData: map[string]any{"fallback": true},
		},
		{
			Source: "eu_horizon", ExternalID: "eic-pathfinder",
			Title:       "EIC Pathfinder",
			URL:         "https://eic.ec.europa.eu/eic-funding-opportunities/eic-pathfinder_en",
			Description: "Supports collaborative research to develop breakthrough technologies. Grants up to EUR 4 million.",
			IsOnline:    true, Regions: []string{"EU"}, TotalPrizeRaw: "4000000 EUR",
			Tags: []string{"eic", "research", "breakthrough", "deep-tech"}, Themes: []string{"research", "innovation"},
			HostName: "European Innovation Council", HostURL: "https://eic.ec.europa.eu",
			RawData: map[string]any{"fallback": true},
		},
		{
			Source: "eu_horizon", ExternalID: "eic-transition",
			Title:       "EIC Transition",
			URL:         "https://eic.ec.europa.eu/eic-funding-opportunities/eic-transition_en",
			Description: "Helps mature research results into market-ready innovations. Grants up to EUR 2.5 million.",
			IsOnline:    true, Regions: []string{"EU"}, TotalPrizeRaw: "2500000 EUR",
			Tags: []string{"eic", "transition", "commercialization"}, Themes: []string{"research", "innovation"},
			HostName: "European Innovation Council", HostURL: "https://eic.ec.europa.eu",
			RawData: map[string]any{"fallback": true},
		},
		{
			Source: "eu_horizon", ExternalID: "horizon-digital-europe",
			Title:       "Digital Europe Programme",
			URL:         "https://digital-strategy.ec.europa.eu/en/activities/digital-programme",
			Description: "Funds AI, cybersecurity, and advanced digital skills projects across the EU.",
			IsOnline:    true, Regions: []string{"EU"},
			Tags: []string{"digital", "ai", "cybersecurity"}, Themes: []string{"research", "innovation"},
			HostName: "European Commission", HostURL: "https://digital-strategy.ec.europa.eu",
			RawData: map[string]any{"fallback": true},
		},
	}
	return adapter.ScrapeResult{Records: records, HasMore: false}, nil
}

// ScrapeDetail is a no-op: the curated table carries everything this
// adapter extracts.
func (a *EUHorizonAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}
