package sanitizer

import (
	"errors"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Go Meetup 2026",
			want:  "go-meetup-2026",
		},
		{
			name:  "surrounding whitespace",
			title: "  Go Meetup  ",
			want:  "go-meetup",
		},
		{
			name:  "quotes stripped not hyphenated",
			title: "Don't Stop Now",
			want:  "dont-stop-now",
		},
		{
			name:  "curly quotes stripped",
			title: "The “Big” Event’s Day",
			want:  "the-big-events-day",
		},
		{
			name:  "non-ascii letters collapse to hyphens",
			title: "Café, Déjà Vu!",
			want:  "caf-d-j-vu",
		},
		{
			name:  "punctuation runs collapse to one hyphen",
			title: "Hello --- World!!!",
			want:  "hello-world",
		},
		{
			name:  "leading and trailing separators stripped",
			title: "...Go Conf...",
			want:  "go-conf",
		},
		{
			name:  "already a slug",
			title: "nextjs-conf-2026",
			want:  "nextjs-conf-2026",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Slugify(tt.title)
			if err != nil {
				t.Fatalf("Slugify(%q) unexpected error: %v", tt.title, err)
			}
			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestSlugifyEmptyResult(t *testing.T) {
	for _, title := range []string{"", "   ", "!!!", "'\"`", "—–—"} {
		if _, err := Slugify(title); !errors.Is(err, ErrEmptySlug) {
			t.Errorf("Slugify(%q) error = %v, want ErrEmptySlug", title, err)
		}
	}
}
