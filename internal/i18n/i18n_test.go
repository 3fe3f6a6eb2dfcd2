package i18n

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"en", "en"},
		{"si", "si"},
		{"ta", "en"},
		{"", "en"},
		{"EN", "en"},
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestT(t *testing.T) {
	if got := T("en", "nav.home"); got != "Home" {
		t.Errorf(`T("en", "nav.home") = %q, want "Home"`, got)
	}
	if got := T("si", "nav.home"); got != "මුල් පිටුව" {
		t.Errorf(`T("si", "nav.home") = %q`, got)
	}
	// unknown language falls back to English
	if got := T("fr", "nav.home"); got != "Home" {
		t.Errorf(`T("fr", "nav.home") = %q, want "Home"`, got)
	}
	// unknown key falls back to the key itself
	if got := T("en", "nav.doesNotExist"); got != "nav.doesNotExist" {
		t.Errorf(`missing key should echo the key, got %q`, got)
	}
}

// Every English key must have a Sinhala rendering; a missing one would show
// raw keys to Sinhala users.
func TestTablesCoverSameKeys(t *testing.T) {
	si := Bundle("si")
	for _, key := range Keys() {
		if _, ok := si[key]; !ok {
			t.Errorf("key %q missing from the Sinhala table", key)
		}
	}

	en := Bundle("en")
	for key := range si {
		if _, ok := en[key]; !ok {
			t.Errorf("key %q present in Sinhala but missing from English", key)
		}
	}
}
