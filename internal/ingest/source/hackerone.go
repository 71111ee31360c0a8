package source

import (
	"context"
	"fmt"

	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/normalize"
)

// HackerOneAdapter surfaces a curated table of well-known bug bounty
// programs. HackerOne's public directory is aggressively bot-protected,
// so — same as original_source/.../scrapers/hackerone_scraper.py — this
// adapter leans entirely on its fallback table rather than attempting a
// live scrape.
type HackerOneAdapter struct{}

// NewHackerOneAdapter constructs the adapter.
func NewHackerOneAdapter() *HackerOneAdapter { return &HackerOneAdapter{} }

func (a *HackerOneAdapter) SourceName() string    { return "hackerone" }
func (a *HackerOneAdapter) BaseURL() string       { return "https://hackerone.com/directory/programs" }
func (a *HackerOneAdapter) RequestDelay() float64 { return 2.0 }

type knownProgram struct {
	handle      string
	name        string
	bountyUSD   float64
	description string
}

// knownPrograms is ported verbatim (handles, names, bounty ceilings) from
// hackerone_scraper.py's _get_known_programs curated table.
var knownPrograms = []knownProgram{
	{"google", "Google Vulnerability Reward Program", 31337, "Security research across Google's products and infrastructure."},
	{"microsoft", "Microsoft Bug Bounty", 15000, "Security research across Microsoft products and cloud services."},
	{"meta", "Meta Bug Bounty", 10000, "Security research across Facebook, Instagram, and WhatsApp."},
	{"github", "GitHub Bug Bounty", 10000, "Security research across GitHub's platform and APIs."},
	{"apple", "Apple Security Bounty", 200000, "Security research across Apple's platforms, including iOS and macOS."},
	{"twitter", "X (Twitter) Bug Bounty", 2940, "Security research across X's platform and APIs."},
	{"uber", "Uber Bug Bounty", 10000, "Security research across Uber's rider and driver platforms."},
	{"airbnb", "Airbnb Bug Bounty", 5000, "Security research across Airbnb's platform."},
	{"shopify", "Shopify Bug Bounty", 10000, "Security research across Shopify's commerce platform."},
	{"paypal", "PayPal Bug Bounty", 10000, "Security research across PayPal's payment platform."},
}

// ScrapeList ignores pagination (page > 1 returns no records) and returns
// the full curated table on the first call.
func (a *HackerOneAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	if page > 1 {
		return adapter.ScrapeResult{HasMore: false}, nil
	}

	records := make([]normalize.Raw, 0, len(knownPrograms))
	for _, p := range knownPrograms {
		records = append(records, normalize.Raw{
			Source:        a.SourceName(),
			ExternalID:    fmt.Sprintf("h1-%s", p.handle),
			Title:         p.name,
			URL:           fmt.Sprintf("https://hackerone.com/%s", p.handle),
			Description:   p.description,
			IsOnline:      true,
			Themes:        []string{"security", "bug-bounty", "cybersecurity"},
			TotalPrizeRaw: fmt.Sprintf("$%.0f", p.bountyUSD),
			HostName:      p.name,
			RawData:       map[string]any{"fallback": true},
		})
	}
	return adapter.ScrapeResult{Records: records, HasMore: false}, nil
}

// ScrapeDetail is a no-op: the curated table already has everything this
// adapter can offer.
func (a *HackerOneAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}
