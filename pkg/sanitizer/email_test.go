package sanitizer

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"first.last@example.com", true},
		{"USER@EXAMPLE.COM", true},
		{"user+tag@sub.domain.io", true},
		{"a@b", false},
		{"a b@c.com", false},
		{"@b.com", false},
		{"a@.co", false},
		{"a@b.c", false},
		{"a@@b.com", false},
		{"", false},
		{"plainstring", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  User@Example.COM  ", "user@example.com"},
		{"a@b.co", "a@b.co"},
		{"\tMIXED@Case.Org\n", "mixed@case.org"},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.input); got != tt.want {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsNonEmpty(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"text", true},
		{"  text  ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}

	for _, tt := range tests {
		if got := IsNonEmpty(tt.input); got != tt.want {
			t.Errorf("IsNonEmpty(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsNonEmptyStringSlice(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   bool
	}{
		{name: "all populated", values: []string{"a", "b"}, want: true},
		{name: "nil", values: nil, want: false},
		{name: "empty", values: []string{}, want: false},
		{name: "blank element", values: []string{"a", "  "}, want: false},
		{name: "empty element", values: []string{"", "b"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNonEmptyStringSlice(tt.values); got != tt.want {
				t.Errorf("IsNonEmptyStringSlice(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
