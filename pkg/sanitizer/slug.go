package sanitizer

import (
	"regexp"
	"strings"
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

var (
	reQuotes      = regexp.MustCompile("['\"`‘’“”]")
	reNonSlugRuns = regexp.MustCompile(`[^a-z0-9]+`)
)

func trimAndLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func stripQuotes(s string) string {
	return reQuotes.ReplaceAllString(s, "")
}

func hyphenateNonAlnum(s string) string {
	return reNonSlugRuns.ReplaceAllString(s, "-")
}

func trimHyphens(s string) string {
	return strings.Trim(s, "-")
}

// Slugify derives a URL-safe identifier from a title: lowercased and
// trimmed, quote characters removed, every run of non-[a-z0-9] collapsed
// to a single hyphen, leading and trailing hyphens stripped.
func Slugify(title string) (string, error) {
	p := Pipeline{
		trimAndLower,
		stripQuotes,
		hyphenateNonAlnum,
		trimHyphens,
	}

	slug := p.Apply(title)
	if slug == "" {
		return "", ErrEmptySlug
	}
	return slug, nil
}
