// Package ascii provides printable-ASCII detection and cleanup helpers.
//
// The stringdist Soundex driver uses these to decide when an input deserves
// an out-of-range diagnostic: Soundex is defined over American English
// letters, and anything outside printable ASCII tends to produce surprising
// codes.
package ascii

import "strings"

// IsPrintable reports whether r is a printable ASCII character, space
// through tilde. Tab, control characters and everything beyond 0x7E are
// not printable in this sense.
func IsPrintable(r rune) bool {
	return r >= 0x20 && r <= 0x7E
}

// Printable reports whether every rune of s is printable ASCII.
func Printable(s string) bool {
	for _, r := range s {
		if !IsPrintable(r) {
			return false
		}
	}
	return true
}

// Sanitize removes every rune that is not printable ASCII.
func Sanitize(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if IsPrintable(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}
