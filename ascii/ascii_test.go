package ascii

import "testing"

func TestIsPrintable(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"space", ' ', true},
		{"tilde", '~', true},
		{"letter", 'a', true},
		{"digit", '7', true},
		{"tab", '\t', false},
		{"newline", '\n', false},
		{"nul", 0, false},
		{"del", 0x7F, false},
		{"latin small o with diaeresis", 'ö', false},
		{"cjk", '語', false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPrintable(tt.r); got != tt.want {
				t.Errorf("IsPrintable(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestPrintable(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"empty", "", true},
		{"plain", "Motorhead", true},
		{"umlaut", "Motörhead", false},
		{"embedded tab", "a\tb", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Printable(tt.s); got != tt.want {
				t.Errorf("Printable(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestSanitize(t *testing.T) {
	if got := Sanitize("Mot\törhead"); got != "Motrhead" {
		t.Errorf("Sanitize = %q, want %q", got, "Motrhead")
	}
	if got := Sanitize("plain"); got != "plain" {
		t.Errorf("Sanitize = %q, want %q", got, "plain")
	}
}
