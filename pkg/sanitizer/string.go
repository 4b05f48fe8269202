package sanitizer

import "strings"

// Clean trims surrounding whitespace. Inner whitespace is preserved;
// titles and descriptions may legitimately contain runs of spaces.
func Clean(s string) string {
	return strings.TrimSpace(s)
}

// CleanSlice trims every element in place and returns the slice.
func CleanSlice(values []string) []string {
	for i, v := range values {
		values[i] = strings.TrimSpace(v)
	}
	return values
}

// IsNonEmpty reports whether s has content after trimming.
func IsNonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsNonEmptyStringSlice reports whether values is non-empty and every
// element is non-empty after trimming.
func IsNonEmptyStringSlice(values []string) bool {
	if len(values) == 0 {
		return false
	}
	for _, v := range values {
		if !IsNonEmpty(v) {
			return false
		}
	}
	return true
}
