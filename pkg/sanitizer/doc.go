// Package sanitizer holds the pure normalization and shape-checking
// routines shared by the event and booking write pipelines: slug
// derivation, calendar-date and clock-time canonicalization, email
// normalization and the non-empty text predicates.
//
// All functions are side-effect free. Failures are reported through the
// sentinel errors in errors.go so callers can branch with errors.Is.
package sanitizer
