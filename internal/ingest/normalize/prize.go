package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	prizeAmountRe = regexp.MustCompile(`(?i)[$€£]?\s*([\d,]+(?:\.\d+)?)\s*([km])?`)
	currencySymbols = map[string]string{
		"$": "USD", "€": "EUR", "£": "GBP",
	}
	nonMonetaryTerms = []string{"swag", "knowledge", "medal", "recognition", "certificate", "experience"}
)

// ParsePrizeAmount extracts a dollar (or other currency) amount from a
// free-text prize description, handling "k"/"m" multipliers and a set of
// known non-monetary prize descriptions that normalize to zero rather
// than failing to parse.
func ParsePrizeAmount(raw string) (amount float64, currency string) {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	for _, term := range nonMonetaryTerms {
		if strings.Contains(lower, term) {
			return 0, ""
		}
	}

	for sym, code := range currencySymbols {
		if strings.Contains(trimmed, sym) {
			currency = code
			break
		}
	}

	match := prizeAmountRe.FindStringSubmatch(trimmed)
	if match == nil {
		return 0, currency
	}

	numeric := strings.ReplaceAll(match[1], ",", "")
	value, err := strconv.ParseFloat(numeric, 64)
	if err != nil {
		return 0, currency
	}

	switch strings.ToLower(match[2]) {
	case "k":
		value *= 1_000
	case "m":
		value *= 1_000_000
	}

	if currency == "" {
		currency = "USD"
	}
	return value, currency
}

// SumPrizeAmounts parses each raw prize line and returns the total, plus
// the first non-empty currency encountered.
func SumPrizeAmounts(raws []string) (total float64, currency string) {
	for _, r := range raws {
		amount, cur := ParsePrizeAmount(r)
		total += amount
		if currency == "" {
			currency = cur
		}
	}
	return total, currency
}
