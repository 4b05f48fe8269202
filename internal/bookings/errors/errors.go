package errors

import "errors"

var (
	ErrNotFound = errors.New("booking not found")

	ErrInvalidID = errors.New("invalid booking ID format")

	// ErrEventNotFound means the referenced event did not exist when the
	// booking was written.
	ErrEventNotFound = errors.New("referenced event does not exist")

	ErrInvalidEmail = errors.New("email must be a valid email address")
)
