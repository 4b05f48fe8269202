package sanitizer

import "errors"

var (
	// ErrInvalidDate means the input could not be parsed as a calendar date.
	ErrInvalidDate = errors.New("invalid date format; expected a parseable date (e.g., 2025-03-01)")

	// ErrInvalidTimeFormat means the input does not match any accepted time shape.
	ErrInvalidTimeFormat = errors.New("invalid time format; use HH:mm or h:mm AM/PM")

	// ErrInvalidMinutes means the minutes component is outside 00-59.
	ErrInvalidMinutes = errors.New("minutes must be between 00 and 59")

	// ErrInvalidHours means the hours component is outside the valid range
	// for the detected notation (0-23 for 24h, 1-12 with an am/pm suffix).
	ErrInvalidHours = errors.New("hours out of range")

	// ErrEmptySlug means the title contains no characters usable in a slug.
	ErrEmptySlug = errors.New("unable to generate slug: no alphanumeric characters")
)
