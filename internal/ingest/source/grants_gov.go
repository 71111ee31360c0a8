package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/normalize"
	"github.com/opportunityradar/radar/internal/ingest/source/httpsrc"
)

// GrantsGovAdapter scrapes Grants.gov's public search API, falling back to
// a small curated table of recurring federal programs when the search API
// itself returns nothing usable (rate limited, schema change) — same
// fallback policy as original_source/.../scrapers/grants_gov_scraper.py.
type GrantsGovAdapter struct {
	client *http.Client
}

// NewGrantsGovAdapter constructs the adapter.
func NewGrantsGovAdapter() *GrantsGovAdapter {
	return &GrantsGovAdapter{client: httpsrc.NewClient()}
}

func (a *GrantsGovAdapter) SourceName() string    { return "grants_gov" }
func (a *GrantsGovAdapter) BaseURL() string       { return "https://www.grants.gov/search-grants" }
func (a *GrantsGovAdapter) RequestDelay() float64 { return 2.0 }

type grantsGovResponse struct {
	OppHits []grantsGovHit `json:"oppHits"`
}

type grantsGovHit struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	AgencyName  string `json:"agencyName"`
	CloseDate   string `json:"closeDate"`
	AwardCeiling string `json:"awardCeiling"`
}

var grantsGovFallback = []normalize.Raw{
	{
		Source: "grants_gov", ExternalID: "sbir-fallback-dod",
		Title: "DoD Small Business Innovation Research", IsOnline: true,
		Themes: []string{"defense", "research"}, HostName: "U.S. Department of Defense",
		RawData: map[string]any{"fallback": true},
	},
	{
		Source: "grants_gov", ExternalID: "nsf-fallback-sbir",
		Title: "NSF Small Business Innovation Research", IsOnline: true,
		Themes: []string{"research", "science"}, HostName: "National Science Foundation",
		RawData: map[string]any{"fallback": true},
	},
}

// ScrapeList calls Grants.gov's search endpoint; on any error it falls
// back to the curated table rather than failing the run, matching the
// original scraper's resilience posture for a flaky government API.
func (a *GrantsGovAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	if page > 1 {
		return adapter.ScrapeResult{HasMore: false}, nil
	}

	url := "https://www.grants.gov/grantsws/rest/opportunities/search/?rows=50"
	body, err := httpsrc.Get(ctx, a.client, url)
	if err != nil {
		return adapter.ScrapeResult{Records: grantsGovFallback, HasMore: false}, nil
	}

	var parsed grantsGovResponse
	if err := json.Unmarshal(body, &parsed); err != nil || len(parsed.OppHits) == 0 {
		return adapter.ScrapeResult{Records: grantsGovFallback, HasMore: false}, nil
	}

	records := make([]normalize.Raw, 0, len(parsed.OppHits))
	for _, hit := range parsed.OppHits {
		records = append(records, normalize.Raw{
			Source:                a.SourceName(),
			ExternalID:            hit.ID,
			Title:                 hit.Title,
			URL:                   fmt.Sprintf("https://www.grants.gov/search-results-detail/%s", hit.ID),
			IsOnline:              true,
			HostName:              hit.AgencyName,
			SubmissionDeadlineRaw: hit.CloseDate,
			TotalPrizeRaw:         hit.AwardCeiling,
		})
	}
	return adapter.ScrapeResult{Records: records, HasMore: false}, nil
}

// ScrapeDetail is a no-op: Grants.gov's search results already carry the
// fields this adapter extracts.
func (a *GrantsGovAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}
