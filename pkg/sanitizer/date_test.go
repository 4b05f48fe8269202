package sanitizer

import (
	"errors"
	"testing"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "canonical is unchanged", input: "2025-03-01", want: "2025-03-01"},
		{name: "rfc3339 utc", input: "2025-03-01T09:30:00Z", want: "2025-03-01"},
		{name: "rfc3339 with offset crossing midnight", input: "2025-03-01T23:30:00-02:00", want: "2025-03-02"},
		{name: "datetime without zone", input: "2025-03-01T18:00:00", want: "2025-03-01"},
		{name: "slash form", input: "2025/03/01", want: "2025-03-01"},
		{name: "us slash form", input: "03/01/2025", want: "2025-03-01"},
		{name: "long month name", input: "March 1, 2025", want: "2025-03-01"},
		{name: "short month name", input: "Mar 1, 2025", want: "2025-03-01"},
		{name: "day first", input: "1 March 2025", want: "2025-03-01"},
		{name: "surrounding whitespace", input: "  2025-12-31  ", want: "2025-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if err != nil {
				t.Fatalf("NormalizeDate(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDateErrors(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date", "2025-13-40", "32/32/2025", "someday soon"} {
		got, err := NormalizeDate(input)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("NormalizeDate(%q) error = %v, want ErrInvalidDate", input, err)
		}
		if got != "" {
			t.Errorf("NormalizeDate(%q) = %q on error, want empty", input, got)
		}
	}
}
