package normalize

import (
	"time"

	"github.com/opportunityradar/radar/internal/domain"
)

// Normalize maps a Raw adapter record onto a domain.Opportunity. It never
// returns an error: every field is parsed independently, and a field that
// fails to parse is simply left at its zero value so one bad field can't
// sink an otherwise-good record.
func Normalize(raw Raw, now time.Time) domain.Opportunity {
	opp := domain.Opportunity{
		Source:       raw.Source,
		ExternalID:   raw.ExternalID,
		Title:        raw.Title,
		Description:  raw.Description,
		Type:         TypeForSource(raw.Source),
		IsOnline:     raw.IsOnline,
		Themes:       dedupe(append(append([]string{}, raw.Themes...), raw.Tags...)),
		Technologies: dedupe(raw.TechStack),
		IsStudentOnly: raw.StudentOnly,
		IsActive:     true,
		RawData:      raw.RawData,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	opp.URLs.Website = raw.URL
	opp.URLs.Logo = raw.ImageURL

	if raw.Location != "" || len(raw.Regions) > 0 {
		loc := &domain.Location{}
		loc.City = raw.Location
		if len(raw.Regions) > 0 {
			loc.Region = raw.Regions[0]
		}
		opp.Location = loc
	}

	if raw.IsOnline {
		opp.Format = domain.FormatOnline
	} else if raw.Location != "" {
		opp.Format = domain.FormatInPerson
	}

	if raw.TeamMin != nil {
		opp.TeamSizeMin = raw.TeamMin
	}
	if raw.TeamMax != nil {
		opp.TeamSizeMax = raw.TeamMax
	}

	if len(raw.PrizesRaw) > 0 {
		total, currency := SumPrizeAmounts(raw.PrizesRaw)
		opp.TotalPrizeValue = total
		opp.Currency = currency
		for _, p := range raw.PrizesRaw {
			amount, cur := ParsePrizeAmount(p)
			opp.Prizes = append(opp.Prizes, domain.Prize{Description: p, Amount: amount, Currency: cur})
		}
	} else if raw.TotalPrizeRaw != "" {
		total, currency := ParsePrizeAmount(raw.TotalPrizeRaw)
		opp.TotalPrizeValue = total
		opp.Currency = currency
	}
	if opp.Currency == "" && raw.PrizeCurrencyHint != "" {
		opp.Currency = raw.PrizeCurrencyHint
	}

	if raw.SubmissionDeadlineRaw != "" {
		opp.ApplicationDeadline, _ = ParseDate(raw.SubmissionDeadlineRaw)
	} else if raw.RegistrationDeadlineRaw != "" {
		opp.ApplicationDeadline, _ = ParseDate(raw.RegistrationDeadlineRaw)
	}

	if raw.StartDateRaw != "" && raw.EndDateRaw != "" {
		opp.EventStartDate, _ = ParseDate(raw.StartDateRaw)
		opp.EventEndDate, _ = ParseDate(raw.EndDateRaw)
	} else if raw.StartDateRaw != "" {
		start, end := ParseDateRange(raw.StartDateRaw)
		opp.EventStartDate, opp.EventEndDate = start, end
	}

	opp.EligibilityCriteria = raw.EligibilityRules

	return opp
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
