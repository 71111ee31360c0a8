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

// MLHAdapter scrapes Major League Hacking's public season API, grounded
// on original_source/.../scrapers/mlh_scraper.py.
type MLHAdapter struct {
	client *http.Client
}

// NewMLHAdapter constructs the adapter.
func NewMLHAdapter() *MLHAdapter { return &MLHAdapter{client: httpsrc.NewClient()} }

func (a *MLHAdapter) SourceName() string    { return "mlh" }
func (a *MLHAdapter) BaseURL() string       { return "https://mlh.io/seasons/2025/events" }
func (a *MLHAdapter) RequestDelay() float64 { return 1.5 }

type mlhEvent struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Online   bool   `json:"online_event"`
	StartAt  string `json:"start_date"`
	EndAt    string `json:"end_date"`
	Slug     string `json:"slug"`
}

// ScrapeList requests MLH's public events JSON and maps each event to a
// normalize.Raw record.
func (a *MLHAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	if page > 1 {
		return adapter.ScrapeResult{HasMore: false}, nil
	}

	url := "https://mlh.io/seasons/2025/events.json"
	body, err := httpsrc.Get(ctx, a.client, url)
	if err != nil {
		return adapter.ScrapeResult{}, fmt.Errorf("mlh: scrape list: %w", err)
	}

	var events []mlhEvent
	if err := json.Unmarshal(body, &events); err != nil {
		return adapter.ScrapeResult{}, fmt.Errorf("mlh: decode list: %w", err)
	}

	records := make([]normalize.Raw, 0, len(events))
	for _, e := range events {
		records = append(records, normalize.Raw{
			Source:       a.SourceName(),
			ExternalID:   e.Slug,
			Title:        e.Name,
			URL:          e.URL,
			IsOnline:     e.Online,
			Location:     e.City,
			Regions:      []string{e.Country},
			StartDateRaw: e.StartAt,
			EndDateRaw:   e.EndAt,
			HostName:     "Major League Hacking",
			StudentOnly:  true,
		})
	}
	return adapter.ScrapeResult{Records: records, HasMore: false}, nil
}

// ScrapeDetail is a no-op: MLH's event list already has everything this
// adapter extracts.
func (a *MLHAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}
