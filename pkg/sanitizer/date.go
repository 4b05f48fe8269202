package sanitizer

import (
	"fmt"
	"strings"
	"time"
)

// Accepted input layouts, tried in order. Inputs without an explicit zone
// are interpreted as UTC so the calendar day never shifts.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// NormalizeDate parses a free-form date string and returns the canonical
// ISO calendar date (YYYY-MM-DD) in UTC terms. Already-canonical input is
// returned unchanged.
func NormalizeDate(input string) (string, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}

	for _, layout := range dateLayouts {
		d, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		return d.UTC().Format("2006-01-02"), nil
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidDate, input)
}
