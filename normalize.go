package stringdist

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// NormalizeOptions configures pre-matching text normalization.
//
// Distances are computed over raw units; normalization is an explicit,
// separate step for callers who want case- or accent-insensitive matching:
//
//	opts := stringdist.NormalizeOptions{StripAccents: true}
//	d, _ := stringdist.Distance(
//		stringdist.Normalize("Café", opts),
//		stringdist.Normalize("cafe", opts),
//		stringdist.Levenshtein, stringdist.DefaultOptions())
//	// d == 0
type NormalizeOptions struct {
	// StripAccents removes diacritical marks: decompose to NFD, drop
	// nonspacing marks (category Mn), recompose to NFC.
	StripAccents bool

	// KeepCase skips case folding. By default input is lowercased.
	KeepCase bool
}

// Normalize trims surrounding whitespace, folds case (unless KeepCase) and
// optionally strips accents.
func Normalize(value string, opts NormalizeOptions) string {
	result := strings.TrimSpace(value)
	if !opts.KeepCase {
		result = strings.ToLower(result)
	}
	if opts.StripAccents {
		result = StripAccents(result)
	}
	return result
}

// StripAccents removes diacritical marks from a string.
//
// Examples:
//   - StripAccents("café") returns "cafe"
//   - StripAccents("Zürich") returns "Zurich"
func StripAccents(value string) string {
	decomposed := norm.NFD.String(value)

	var builder strings.Builder
	builder.Grow(len(decomposed))
	for _, r := range decomposed {
		if !unicode.Is(unicode.Mn, r) {
			builder.WriteRune(r)
		}
	}
	return norm.NFC.String(builder.String())
}
