package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/normalize"
)

// YCombinatorAdapter covers Y Combinator itself plus the accelerator
// listings it renders client-side, grounded on
// original_source/.../scrapers/ycombinator_scraper.py. YC's own apply page
// carries no list of "open" batches to scrape — it's a single standing
// program — so that half of the record set is a static entry, matching
// the original's own _get_yc_fallback; only Techstars' accelerator
// directory is rendered and scraped live.
type YCombinatorAdapter struct {
	pool *Pool
}

// NewYCombinatorAdapter constructs the adapter against a shared Pool.
func NewYCombinatorAdapter(pool *Pool) *YCombinatorAdapter {
	return &YCombinatorAdapter{pool: pool}
}

func (a *YCombinatorAdapter) SourceName() string    { return "ycombinator" }
func (a *YCombinatorAdapter) BaseURL() string       { return "https://www.ycombinator.com/apply" }
func (a *YCombinatorAdapter) RequestDelay() float64 { return 2.0 }

var yCombinatorRecord = normalize.Raw{
	Source:            "ycombinator",
	ExternalID:        "acc-ycombinator",
	Title:             "Y Combinator Startup Accelerator",
	URL:               "https://www.ycombinator.com/apply",
	Description:       "Y Combinator funds over 200 companies per batch, providing $500,000 for 7% equity plus three months of mentorship.",
	ImageURL:          "https://www.ycombinator.com/assets/ycdc/yc-og-image.png",
	Location:          "San Francisco, CA / Remote",
	IsOnline:          false,
	Regions:           []string{"US", "Global"},
	TotalPrizeRaw:     "500000",
	PrizeCurrencyHint: "USD",
	Tags:              []string{"accelerator", "yc", "y-combinator", "startup", "funding", "equity"},
	Themes:            []string{"startup", "entrepreneurship", "funding", "mentorship"},
	HostName:          "Y Combinator",
	HostURL:           "https://www.ycombinator.com",
	RawData:           map[string]any{"equity": "7%"},
}

// ScrapeList returns the static Y Combinator record plus every Techstars
// accelerator program rendered on Techstars' public directory.
func (a *YCombinatorAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	if page > 1 {
		return adapter.ScrapeResult{HasMore: false}, nil
	}

	records := []normalize.Raw{yCombinatorRecord}

	err := a.pool.Navigate(ctx, "https://www.techstars.com/accelerators", 30*time.Second, func(p *rod.Page) error {
		cards, err := p.Elements("a[href*='/accelerators/']")
		if err != nil {
			return fmt.Errorf("select accelerator cards: %w", err)
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
				Source:            a.SourceName(),
				ExternalID:        "techstars-" + *href,
				Title:             title,
				URL:               "https://www.techstars.com" + *href,
				IsOnline:          false,
				Regions:           []string{"Global"},
				TotalPrizeRaw:     "120000",
				PrizeCurrencyHint: "USD",
				Tags:              []string{"accelerator", "techstars", "startup", "funding"},
				Themes:            []string{"startup", "entrepreneurship", "mentorship"},
				HostName:          "Techstars",
				HostURL:           "https://www.techstars.com",
			})
		}
		return nil
	})
	if err != nil {
		// Techstars' directory is best-effort; YC's static record still
		// surfaces even if the live accelerator scrape fails.
		return adapter.ScrapeResult{Records: records, HasMore: false}, nil
	}

	return adapter.ScrapeResult{Records: records, HasMore: false}, nil
}

// ScrapeDetail is unimplemented; see EthGlobalAdapter.ScrapeDetail for the
// same rationale.
func (a *YCombinatorAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}
