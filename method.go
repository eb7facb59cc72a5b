package stringdist

import "fmt"

// Method identifies a string distance algorithm.
//
// Use cases:
//   - OSA: typo correction, fuzzy CLI matching (adjacent transpositions,
//     cannot edit the same substring twice)
//   - Levenshtein: general-purpose edit distance, spell checking
//   - DamerauLevenshtein: unrestricted transpositions, record linkage
//   - Hamming: fixed-width codes, equal-length strings only
//   - LCS: edit distance with insertions and deletions only
//   - QGram / Cosine / Jaccard: profile distances over character q-grams,
//     robust for longer text
//   - JaroWinkler: short strings with common prefixes, name matching
//   - Soundex: phonetic equality of American English names
type Method string

const (
	// OSA is Optimal String Alignment: weighted edit distance with adjacent
	// transpositions, where a transposed pair cannot be edited again.
	OSA Method = "osa"

	// Levenshtein is weighted edit distance over deletions, insertions and
	// substitutions.
	Levenshtein Method = "lv"

	// DamerauLevenshtein is the unrestricted Damerau distance: like OSA but
	// transposed pairs may be edited further.
	DamerauLevenshtein Method = "dl"

	// Hamming counts positions with differing units. Defined only for
	// equal-length inputs; unequal lengths yield +Inf.
	Hamming Method = "hamming"

	// LCS is the longest-common-subsequence edit distance
	// |a| + |b| - 2*LCS(a, b).
	LCS Method = "lcs"

	// QGram is the L1 distance between q-gram count profiles.
	QGram Method = "qgram"

	// Cosine is one minus the cosine similarity of q-gram count profiles.
	Cosine Method = "cosine"

	// Jaccard is one minus the Jaccard index of q-gram sets.
	Jaccard Method = "jaccard"

	// JaroWinkler is the Jaro distance with the Winkler common-prefix boost
	// controlled by Options.P (P = 0 gives plain Jaro).
	JaroWinkler Method = "jw"

	// Soundex is 0 when both inputs share an American Soundex code, else 1.
	Soundex Method = "soundex"
)

var methods = map[Method]bool{
	OSA:                true,
	Levenshtein:        true,
	DamerauLevenshtein: true,
	Hamming:            true,
	LCS:                true,
	QGram:              true,
	Cosine:             true,
	Jaccard:            true,
	JaroWinkler:        true,
	Soundex:            true,
}

// ParseMethod converts a method identifier string ("osa", "lv", "dl",
// "hamming", "lcs", "qgram", "cosine", "jaccard", "jw", "soundex") into a
// Method. Unknown identifiers return ErrInvalidArgument.
func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if !methods[m] {
		return "", fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, s)
	}
	return m, nil
}

// editBased reports whether the method is a true edit distance. For these
// the maxDist cap participates directly in the dynamic program; for the
// remaining methods the internal kernel protocol encodes "uncapped" as 0
// (see resolveOptions).
func (m Method) editBased() bool {
	switch m {
	case OSA, Levenshtein, DamerauLevenshtein, Hamming, LCS:
		return true
	}
	return false
}

// usesQGrams reports whether the method consumes the q-gram store.
func (m Method) usesQGrams() bool {
	switch m {
	case QGram, Cosine, Jaccard:
		return true
	}
	return false
}

// weightArity is the number of leading weights the method reads; 0 means
// weights are ignored entirely.
func (m Method) weightArity() int {
	switch m {
	case OSA, DamerauLevenshtein:
		return 4
	case Levenshtein, JaroWinkler:
		return 3
	}
	return 0
}
