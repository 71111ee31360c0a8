package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/normalize"
)

// HackerEarthAdapter scrapes HackerEarth's challenge listing, which is a
// client-rendered React app with no stable public API, per
// original_source/.../scrapers/hackerearth_scraper.py.
type HackerEarthAdapter struct {
	pool *Pool
}

// NewHackerEarthAdapter constructs the adapter against a shared Pool.
func NewHackerEarthAdapter(pool *Pool) *HackerEarthAdapter {
	return &HackerEarthAdapter{pool: pool}
}

func (a *HackerEarthAdapter) SourceName() string    { return "hackerearth" }
func (a *HackerEarthAdapter) BaseURL() string       { return "https://www.hackerearth.com/challenges/" }
func (a *HackerEarthAdapter) RequestDelay() float64 { return 2.5 }

// ScrapeList renders the challenges page and extracts each challenge
// card's title and URL from the DOM.
func (a *HackerEarthAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	if page > 1 {
		return adapter.ScrapeResult{HasMore: false}, nil
	}

	var records []normalize.Raw
	err := a.pool.Navigate(ctx, a.BaseURL(), 30*time.Second, func(p *rod.Page) error {
		cards, err := p.Elements("a.challenge-card-wrapper")
		if err != nil {
			return fmt.Errorf("select challenge cards: %w", err)
		}
		for _, card := range cards {
			href, err := card.Attribute("href")
			if err != nil || href == nil {
				continue
			}
			title, err := card.Text()
			if err != nil || title == "" {
				continue
			}
			records = append(records, normalize.Raw{
				Source:     a.SourceName(),
				ExternalID: *href,
				Title:      title,
				URL:        *href,
				IsOnline:   true,
				Themes:     []string{"programming", "competitive-coding"},
				HostName:   "HackerEarth",
			})
		}
		return nil
	})
	if err != nil {
		return adapter.ScrapeResult{}, fmt.Errorf("hackerearth: scrape list: %w", err)
	}

	return adapter.ScrapeResult{Records: records, HasMore: false}, nil
}

// ScrapeDetail is unimplemented; see EthGlobalAdapter.ScrapeDetail for the
// same rationale.
func (a *HackerEarthAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}
