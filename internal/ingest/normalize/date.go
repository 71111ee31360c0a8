package normalize

import (
	"strings"
	"time"
)

// dateLayouts are tried in order against a raw date string; the original
// scrapers emit a handful of human-authored formats ("Jan 12, 2024",
// "2024-01-12", "January 12 2024") rather than one consistent ISO format.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"January 2 2006",
	"2 Jan 2006",
	"01/02/2006",
}

// ParseDate tries each known layout in turn and returns the first
// successful parse in UTC. A field that fails to parse under every layout
// returns (nil, false): the caller nulls the field rather than discarding
// the whole record.
func ParseDate(raw string) (*time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			utc := t.UTC()
			return &utc, true
		}
	}
	return nil, false
}

// ParseDateRange handles a compact range like "Jan 12 - 14, 2024" or
// "Jan 12 - Feb 3, 2024" by splitting on the dash and, if the end side
// lacks a month/year, borrowing it from the start side.
func ParseDateRange(raw string) (start, end *time.Time) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	parts := strings.SplitN(trimmed, "-", 2)
	if len(parts) != 2 {
		if t, ok := ParseDate(trimmed); ok {
			return t, t
		}
		return nil, nil
	}

	left := strings.TrimSpace(parts[0])
	right := strings.TrimSpace(parts[1])

	startT, startOK := ParseDate(left + ", " + trailingYear(right))
	if !startOK {
		startT, startOK = ParseDate(left)
	}
	endT, endOK := ParseDate(right)
	if !endOK {
		endT, endOK = ParseDate(right + " " + trailingYear(left))
	}

	if startOK {
		start = startT
	}
	if endOK {
		end = endT
	}
	return start, end
}

// trailingYear extracts a 4-digit year from the tail of s, if present, so
// a day-only fragment ("14") can be combined with the year carried by the
// other half of the range.
func trailingYear(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	last := fields[len(fields)-1]
	if len(last) == 4 {
		for _, r := range last {
			if r < '0' || r > '9' {
				return ""
			}
		}
		return last
	}
	return ""
}
