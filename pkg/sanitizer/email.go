package sanitizer

import (
	"regexp"
	"strings"
)

// local-part and domain free of whitespace and '@'; final label at least
// two characters. Case-insensitive.
var reEmail = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// NormalizeEmail returns the stored form of an address: trimmed and
// lowercased. It does not validate shape; pair with IsValidEmail.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func IsValidEmail(email string) bool {
	return reEmail.MatchString(email)
}
