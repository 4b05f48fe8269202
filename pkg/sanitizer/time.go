package sanitizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Matches "h", "hh", "h:mm", "hh:mm", "hh:mm:ss", optionally followed by
// am/pm with optional whitespace before the suffix.
var reTime = regexp.MustCompile(`^(\d{1,2})(?::(\d{2})(?::\d{2})?)?\s*([ap]m)?$`)

// NormalizeTime converts a 12h or 24h clock string into zero-padded
// 24-hour "HH:MM". Seconds, when present, are dropped. Already-canonical
// input is returned unchanged.
func NormalizeTime(input string) (string, error) {
	raw := strings.ToLower(strings.TrimSpace(input))

	m := reTime.FindStringSubmatch(raw)
	if m == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
	}

	hours, err := strconv.Atoi(m[1])
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
	}

	minutes := 0
	if m[2] != "" {
		minutes, err = strconv.Atoi(m[2])
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
		}
	}
	ampm := m[3]

	if minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("%w: got %02d", ErrInvalidMinutes, minutes)
	}

	if ampm == "" {
		if hours < 0 || hours > 23 {
			return "", fmt.Errorf("%w: hours must be between 0 and 23 for 24h time, got %d", ErrInvalidHours, hours)
		}
	} else {
		if hours < 1 || hours > 12 {
			return "", fmt.Errorf("%w: hours must be 1-12 when using AM/PM, got %d", ErrInvalidHours, hours)
		}
		if ampm == "pm" && hours != 12 {
			hours += 12
		}
		if ampm == "am" && hours == 12 {
			hours = 0
		}
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}
