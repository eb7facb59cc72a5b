package stringdist

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		opts NormalizeOptions
		want string
	}{
		{"trims and folds", "  Hello  ", NormalizeOptions{}, "hello"},
		{"keep case", "Hello", NormalizeOptions{KeepCase: true}, "Hello"},
		{"accents kept by default", "café", NormalizeOptions{}, "café"},
		{"accents stripped", "Café", NormalizeOptions{StripAccents: true}, "cafe"},
		{"zurich", "Zürich", NormalizeOptions{StripAccents: true}, "zurich"},
		{"empty", "", NormalizeOptions{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in, tt.opts); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripAccents(t *testing.T) {
	tests := []struct{ in, want string }{
		{"café", "cafe"},
		{"naïve", "naive"},
		{"résumé", "resume"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := StripAccents(tt.in); got != tt.want {
			t.Errorf("StripAccents(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_FeedsMatching(t *testing.T) {
	opts := NormalizeOptions{StripAccents: true}
	d, err := Distance(Normalize("Café", opts), Normalize("cafe", opts), Levenshtein, DefaultOptions())
	if err != nil {
		t.Fatalf("Distance returned error: %v", err)
	}
	if d != 0 {
		t.Errorf("normalized distance = %v, want 0", d)
	}
}
