package model

import "testing"

func TestNormalizeIcon(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"book", "book"},
		{"calculator", "calculator"},
		{"flask", "flask"},
		{"rocket", "book"},
		{"", "book"},
		{"BOOK", "book"},
	}
	for _, tt := range tests {
		if got := NormalizeIcon(tt.in); got != tt.want {
			t.Errorf("NormalizeIcon(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"en", true},
		{"si", true},
		{"ta", false},
		{"", false},
		{"english", false},
	}
	for _, tt := range tests {
		if got := ValidLanguage(tt.in); got != tt.want {
			t.Errorf("ValidLanguage(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
