package normalize

import (
	"testing"
	"time"

	"github.com/opportunityradar/radar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeForSource(t *testing.T) {
	assert.Equal(t, domain.OpportunityHackathon, TypeForSource("devpost"))
	assert.Equal(t, domain.OpportunityBounty, TypeForSource("hackerone"))
	assert.Equal(t, domain.OpportunityGrant, TypeForSource("grants_gov"))
	assert.Equal(t, domain.OpportunityOther, TypeForSource("some_unknown_source"))
}

func TestParsePrizeAmount(t *testing.T) {
	cases := []struct {
		raw      string
		wantAmt  float64
		wantCur  string
	}{
		{"$50,000", 50000, "USD"},
		{"$10k", 10000, "USD"},
		{"€1.5m", 1500000, "EUR"},
		{"Swag and stickers", 0, ""},
		{"", 0, ""},
	}
	for _, c := range cases {
		amt, cur := ParsePrizeAmount(c.raw)
		assert.Equal(t, c.wantAmt, amt, c.raw)
		assert.Equal(t, c.wantCur, cur, c.raw)
	}
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2024-03-15")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), *got)

	_, ok = ParseDate("not a date")
	assert.False(t, ok)

	_, ok = ParseDate("")
	assert.False(t, ok)
}

func TestNormalizeDoesNotFailOnBadFields(t *testing.T) {
	raw := Raw{
		Source:     "devpost",
		ExternalID: "abc123",
		Title:      "Test Hackathon",
		IsOnline:   true,
		SubmissionDeadlineRaw: "garbage-date",
		PrizesRaw:             []string{"$5,000", "Swag"},
	}
	opp := Normalize(raw, time.Now().UTC())
	assert.Equal(t, domain.OpportunityHackathon, opp.Type)
	assert.Nil(t, opp.ApplicationDeadline)
	assert.Equal(t, float64(5000), opp.TotalPrizeValue)
	assert.Equal(t, "USD", opp.Currency)
}
