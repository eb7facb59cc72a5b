package stringdist

import (
	"context"
	"testing"
)

func TestSoundexCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Robert", "R163"},
		{"Rupert", "R163"},
		{"Ashcraft", "A261"}, // c after h still collapses with s
		{"Ashcroft", "A261"},
		{"Tymczak", "T522"},
		{"Pfister", "P236"}, // f collapses into the leading P's class
		{"Honeyman", "H555"},
		{"john", "J500"},
		{"jan", "J500"},
		{"sock", "S200"},
		{"sck", "S000"},
		{"White", "W300"},
		{"", "0000"},
		{"0000", "0000"}, // no letters at all
		{"  42 ", "0000"},
		{"a", "A000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, _ := SoundexCode(tt.in)
			if got != tt.want {
				t.Errorf("SoundexCode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSoundex_Distance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected float64
	}{
		{"john", "jan", 0},
		{"sock", "sck", 1},
		{"Robert", "Rupert", 0},
		{"Robert", "Rubin", 1},
		{"", "0000", 0}, // leading non-letters drop; empty encodes to 0000
		{"", "", 0},
	}
	for _, tt := range tests {
		if got := dist(t, tt.a, tt.b, Soundex, DefaultOptions()); got != tt.expected {
			t.Errorf("soundex(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestSoundexCode_ReportsOutOfRange(t *testing.T) {
	if _, ok := SoundexCode("Motorhead"); !ok {
		t.Error("plain ASCII reported out of range")
	}
	if _, ok := SoundexCode("Motörhead"); ok {
		t.Error("non-ASCII input not reported")
	}
	if _, ok := SoundexCode("a\tb"); ok {
		t.Error("control character not reported")
	}
}

// Non-ASCII and non-printable Soundex inputs must surface on the
// diagnostic channel, without failing the call.
func TestSoundex_Warning(t *testing.T) {
	var got []Warning
	SetDiagnosticHandler(func(w Warning) { got = append(got, w) })
	defer SetDiagnosticHandler(nil)

	opts := DefaultOptions()
	opts.NThreads = 1
	d, err := Pairwise(context.Background(), Strs("Motörhead"), Strs("Motorhead"), Soundex, opts)
	if err != nil {
		t.Fatalf("Pairwise returned error: %v", err)
	}
	if len(d) != 1 || d[0] != 0 {
		t.Errorf("soundex result = %v, want [0]", d)
	}

	if len(got) != 1 {
		t.Fatalf("got %d warnings, want 1", len(got))
	}
	w := got[0]
	if w.Code != WarnOutOfRange {
		t.Errorf("warning code = %q, want %q", w.Code, WarnOutOfRange)
	}
	if w.Count != 1 {
		t.Errorf("warning count = %d, want 1", w.Count)
	}
	if w.Method != Soundex {
		t.Errorf("warning method = %q, want soundex", w.Method)
	}
	if w.CorrelationID == "" {
		t.Error("warning missing correlation id")
	}
}

func TestSoundex_NoWarningForCleanInput(t *testing.T) {
	var got []Warning
	SetDiagnosticHandler(func(w Warning) { got = append(got, w) })
	defer SetDiagnosticHandler(nil)

	if _, err := Pairwise(context.Background(), Strs("smith"), Strs("smythe"), Soundex, DefaultOptions()); err != nil {
		t.Fatalf("Pairwise returned error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("unexpected warnings: %v", got)
	}
}
