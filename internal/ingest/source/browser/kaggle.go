package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/normalize"
)

// KaggleAdapter scrapes Kaggle's competitions listing, which renders its
// competition cards client-side, grounded on
// original_source/.../scrapers/kaggle_scraper.py's _find_competition_cards
// (unique-href dedup, trailing-segment ID extraction, same fallback-title
// rule when the link text can't be parsed).
type KaggleAdapter struct {
	pool *Pool
}

// NewKaggleAdapter constructs the adapter against a shared Pool.
func NewKaggleAdapter(pool *Pool) *KaggleAdapter {
	return &KaggleAdapter{pool: pool}
}

func (a *KaggleAdapter) SourceName() string    { return "kaggle" }
func (a *KaggleAdapter) BaseURL() string       { return "https://www.kaggle.com/competitions" }
func (a *KaggleAdapter) RequestDelay() float64 { return 2.0 }

// ScrapeList renders the competitions page and extracts each
// competition's title and URL from its anchor element.
func (a *KaggleAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	if page > 1 {
		return adapter.ScrapeResult{HasMore: false}, nil
	}

	var records []normalize.Raw
	err := a.pool.Navigate(ctx, a.BaseURL(), 30*time.Second, func(p *rod.Page) error {
		links, err := p.Elements("a[href*='/competitions/']")
		if err != nil {
			return fmt.Errorf("select competition links: %w", err)
		}

		seen := make(map[string]bool)
		for _, link := range links {
			href, err := link.Attribute("href")
			if err != nil || href == nil {
				continue
			}
			if *href == "" || *href == "/competitions" || *href == "/competitions/" {
				continue
			}
			if strings.ContainsAny(*href, "?#") {
				continue
			}
			parts := strings.Split(strings.TrimRight(*href, "/"), "/")
			externalID := parts[len(parts)-1]
			if externalID == "" || externalID == "competitions" || seen[externalID] {
				continue
			}
			seen[externalID] = true

			title, err := link.Text()
			if err != nil || title == "" {
				title = strings.ReplaceAll(externalID, "-", " ")
			}

			url := *href
			if !strings.HasPrefix(url, "http") {
				url = "https://www.kaggle.com" + url
			}

			records = append(records, normalize.Raw{
				Source:     a.SourceName(),
				ExternalID: "kaggle-" + externalID,
				Title:      strings.TrimSpace(title),
				URL:        url,
				IsOnline:   true,
				Regions:    []string{"Global"},
				Themes:     []string{"machine-learning", "data-science"},
				TechStack:  []string{"python", "tensorflow", "pytorch", "scikit-learn"},
				HostName:   "Kaggle",
				HostURL:    "https://www.kaggle.com",
			})
		}
		return nil
	})
	if err != nil {
		return adapter.ScrapeResult{}, fmt.Errorf("kaggle: scrape list: %w", err)
	}

	return adapter.ScrapeResult{Records: records, HasMore: false}, nil
}

// ScrapeDetail is unimplemented; see EthGlobalAdapter.ScrapeDetail for the
// same rationale.
func (a *KaggleAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}
