package stringdist

import (
	"fmt"
	"unicode/utf8"
)

// decodeInto converts a host string into its unit sequence, reusing dst's
// backing array. In code-point mode the string is decoded as UTF-8 and
// invalid input fails with ErrEncoding. In byte mode each raw byte becomes
// one unit and no validation happens, so any two byte-equal encodings
// compare identically.
func decodeInto(dst []rune, s string, useBytes bool) ([]rune, error) {
	dst = dst[:0]
	if useBytes {
		for i := 0; i < len(s); i++ {
			dst = append(dst, rune(s[i]))
		}
		return dst, nil
	}
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: %q", ErrEncoding, s)
	}
	for _, r := range s {
		dst = append(dst, r)
	}
	return dst, nil
}
