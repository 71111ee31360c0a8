package source

import (
	"context"

	"github.com/opportunityradar/radar/internal/ingest/adapter"
	"github.com/opportunityradar/radar/internal/ingest/normalize"
)

// SBIRAdapter surfaces the recurring federal SBIR/STTR solicitation
// programs as a curated table, grounded on
// original_source/.../scrapers/sbir_scraper.py's _get_known_sbir_programs
// — sbir.gov's open-solicitations page renders client-side and the
// scraper it's grounded on falls back to this same table whenever the
// page can't be parsed.
type SBIRAdapter struct{}

// NewSBIRAdapter constructs the adapter.
func NewSBIRAdapter() *SBIRAdapter { return &SBIRAdapter{} }

func (a *SBIRAdapter) SourceName() string    { return "sbir" }
func (a *SBIRAdapter) BaseURL() string       { return "https://www.sbir.gov/solicitations/open" }
func (a *SBIRAdapter) RequestDelay() float64 { return 2.0 }

type sbirProgram struct {
	id, title, agency, description, url string
	amount                              string
}

var sbirPrograms = []sbirProgram{
	{"dod-sbir", "DoD SBIR/STTR Program", "Department of Defense", "Largest SBIR program. Phase I: $50K-$275K, Phase II: $750K-$1.8M. Covers defense technology.", "https://www.dodsbirsttr.mil/", "275000"},
	{"hhs-sbir", "HHS/NIH SBIR/STTR Program", "Department of Health and Human Services", "Health and biomedical research innovation. Phase I: $275K, Phase II: $2M.", "https://sbir.nih.gov/", "275000"},
	{"nsf-sbir", "NSF SBIR/STTR Program", "National Science Foundation", "Deep technology startups. Phase I: $275K, Phase II: $1M.", "https://seedfund.nsf.gov/", "275000"},
	{"doe-sbir", "DOE SBIR/STTR Program", "Department of Energy", "Energy technology innovation. Phase I: $275K, Phase II: $1.8M.", "https://www.sbir.gov/agencies/department-energy", "275000"},
	{"nasa-sbir", "NASA SBIR/STTR Program", "NASA", "Space technology and aeronautics. Phase I: $150K, Phase II: $850K.", "https://sbir.nasa.gov/", "150000"},
	{"usda-sbir", "USDA SBIR Program", "USDA", "Agricultural innovation. Phase I: $100K, Phase II: $600K.", "https://www.sbir.gov/agencies/department-agriculture", "100000"},
	{"epa-sbir", "EPA SBIR Program", "Environmental Protection Agency", "Environmental technology solutions. Phase I: $100K, Phase II: $400K.", "https://www.epa.gov/sbir", "100000"},
	{"dhs-sbir", "DHS SBIR Program", "Department of Homeland Security", "Homeland security technology. Phase I: $150K, Phase II: $1M.", "https://www.sbir.gov/agencies/department-homeland-security", "150000"},
}

// ScrapeList returns the curated program table on page 1 only.
func (a *SBIRAdapter) ScrapeList(ctx context.Context, page int) (adapter.ScrapeResult, error) {
	if page > 1 {
		return adapter.ScrapeResult{HasMore: false}, nil
	}
	records := make([]normalize.Raw, 0, len(sbirPrograms))
	for _, p := range sbirPrograms {
		records = append(records, normalize.Raw{
			Source: a.SourceName(), ExternalID: "sbir-" + p.id,
			Title: p.title, URL: p.url, Description: p.description,
			Location: "United States", IsOnline: true, Regions: []string{"US"},
			TotalPrizeRaw: p.amount, PrizeCurrencyHint: "USD",
			Tags:     []string{"sbir", "sttr", "federal-funding", "small-business"},
			Themes:   []string{"innovation", "research", "government-funding"},
			HostName: p.agency, HostURL: "https://www.sbir.gov",
			RawData: map[string]any{"fallback": true},
		})
	}
	return adapter.ScrapeResult{Records: records, HasMore: false}, nil
}

// ScrapeDetail is a no-op: the curated table carries everything this
// adapter extracts.
func (a *SBIRAdapter) ScrapeDetail(ctx context.Context, externalID, url string) (*normalize.Raw, error) {
	return nil, nil
}
