package errors

import "errors"

var (
	ErrNotFound = errors.New("event not found")

	ErrInvalidID = errors.New("invalid event ID format")

	// ErrDuplicateSlug is raised when the store's unique slug index
	// rejects a write.
	ErrDuplicateSlug = errors.New("an event with this slug already exists")

	// ErrSlugGeneration wraps sanitizer.ErrEmptySlug when the title
	// cannot produce a slug.
	ErrSlugGeneration = errors.New("unable to generate slug from title")

	ErrInvalidAgenda = errors.New("agenda must be a non-empty array of strings")

	ErrInvalidTags = errors.New("tags must be a non-empty array of strings")
)
