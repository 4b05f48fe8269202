package sanitizer

import (
	"errors"
	"fmt"
	"testing"
)

func TestNormalizeTime(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "canonical is unchanged", input: "09:00", want: "09:00"},
		{name: "midnight 12h", input: "12:00am", want: "00:00"},
		{name: "noon 12h", input: "12:00pm", want: "12:00"},
		{name: "afternoon 12h", input: "1:05pm", want: "13:05"},
		{name: "last minute of day", input: "11:59pm", want: "23:59"},
		{name: "space before suffix", input: "9:30 AM", want: "09:30"},
		{name: "uppercase suffix", input: "7:45PM", want: "19:45"},
		{name: "bare hour 24h", input: "8", want: "08:00"},
		{name: "bare hour 12h", input: "8pm", want: "20:00"},
		{name: "two digit bare hour", input: "23", want: "23:00"},
		{name: "seconds dropped", input: "14:30:59", want: "14:30"},
		{name: "unpadded hour", input: "9:05", want: "09:05"},
		{name: "surrounding whitespace", input: "  17:15  ", want: "17:15"},
		{name: "midnight 24h", input: "0:00", want: "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTime(tt.input)
			if err != nil {
				t.Fatalf("NormalizeTime(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeTime(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeTimeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "not a time", input: "abc", wantErr: ErrInvalidTimeFormat},
		{name: "empty", input: "", wantErr: ErrInvalidTimeFormat},
		{name: "single digit minutes", input: "9:5", wantErr: ErrInvalidTimeFormat},
		{name: "three digit hour", input: "100:00", wantErr: ErrInvalidTimeFormat},
		{name: "trailing garbage", input: "10:00 utc", wantErr: ErrInvalidTimeFormat},
		{name: "minutes too large", input: "10:75", wantErr: ErrInvalidMinutes},
		{name: "hour past 23 in 24h", input: "25:00", wantErr: ErrInvalidHours},
		{name: "24h hour with am suffix", input: "13:00am", wantErr: ErrInvalidHours},
		{name: "zero hour with pm suffix", input: "0:30pm", wantErr: ErrInvalidHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeTime(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NormalizeTime(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != "" {
				t.Errorf("NormalizeTime(%q) = %q on error, want empty", tt.input, got)
			}
		})
	}
}

// 12-hour inputs must always land inside the 24-hour range.
func TestNormalizeTimeTwelveHourRange(t *testing.T) {
	for hour := 1; hour <= 12; hour++ {
		for _, suffix := range []string{"am", "pm"} {
			input := fmt.Sprintf("%d:00%s", hour, suffix)
			got, err := NormalizeTime(input)
			if err != nil {
				t.Fatalf("NormalizeTime(%q) unexpected error: %v", input, err)
			}
			var h, m int
			if _, err := fmt.Sscanf(got, "%02d:%02d", &h, &m); err != nil {
				t.Fatalf("NormalizeTime(%q) = %q, not HH:MM", input, got)
			}
			if h < 0 || h > 23 {
				t.Errorf("NormalizeTime(%q) hour = %d, want within [0,23]", input, h)
			}
		}
	}
}
