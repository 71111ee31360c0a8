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

// DevpostAdapter scrapes Devpost's public hackathon listing API,
// grounded on original_source/.../scrapers/devpost_scraper.py.
type DevpostAdapter struct {
	client *http.Client
}

// NewDevpostAdapter constructs the adapter, sharing httpsrc's browser-like
// client.
func NewDevpostAdapter() *DevpostAdapter {
	return &DevpostAdapter{client: httpsrc.NewClient()}
}

func (a *DevpostAdapter) SourceName() string  { return "devpost" }
func (a *DevpostAdapter) BaseURL() string     { return "https://devpost.com/hackathons" }
func (a *DevpostAdapter) RequestDelay() float64 { return 1.5 }

type devpostListResponse struct {
	Hackathons []devpostHackathon `json:"hackathons"`
}

type devpostHackathon struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	URL             string   `json:"url"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	SubmissionPeriodDates string `json:"submission_period_dates"`
	RegistrationsURL string  `json:"registrations_url"`
	PrizeAmount      string  `json:"prize_amount"`
	OrganizationName string  `json:"organization_name"`
	Themes           []struct {
		Name string `json:"name"`
	} `json:"themes"`
	OpenState string `json:"open_state"`
}

// ScrapeList requests one page of Devpost's "open" hackathons and maps
// each entry to a normalize.Raw record.
func (a *DevpostAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	url := fmt.Sprintf("https://devpost.com/api/hackathons?status[]=open&page=%d", page)
	body, err := httpsrc.Get(ctx, a.client, url)
	if err != nil {
		return adapter.ScrapeResult{}, fmt.Errorf("devpost: scrape list page %d: %w", page, err)
	}

	var parsed devpostListResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return adapter.ScrapeResult{}, fmt.Errorf("devpost: decode page %d: %w", page, err)
	}

	records := make([]normalize.Raw, 0, len(parsed.Hackathons))
	for _, h := range parsed.Hackathons {
		themes := make([]string, 0, len(h.Themes))
		for _, t := range h.Themes {
			themes = append(themes, t.Name)
		}
		records = append(records, normalize.Raw{
			Source:                  a.SourceName(),
			ExternalID:              fmt.Sprintf("%d", h.ID),
			Title:                   h.Title,
			URL:                     h.URL,
			ImageURL:                h.ThumbnailURL,
			IsOnline:                true,
			Themes:                  themes,
			TotalPrizeRaw:           h.PrizeAmount,
			RegistrationDeadlineRaw: h.SubmissionPeriodDates,
			HostName:                h.OrganizationName,
			RawData:                 map[string]any{"open_state": h.OpenState},
		})
	}

	return adapter.ScrapeResult{Records: records, HasMore: len(records) > 0}, nil
}

// ScrapeDetail is a no-op for Devpost: the listing API already carries
// everything this adapter extracts.
func (a *DevpostAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}
