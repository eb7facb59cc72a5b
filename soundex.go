package stringdist

import (
	"math"

	"github.com/fulmenhq/gostringdist/ascii"
)

// Soundex digit classes. Vowels (and Y) break duplicate collapsing; H and W
// are transparent and do not.
const (
	sdxVowel = 0
	sdxHW    = 7
)

func soundexClass(r rune) int {
	switch r {
	case 'B', 'F', 'P', 'V':
		return 1
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return 2
	case 'D', 'T':
		return 3
	case 'L':
		return 4
	case 'M', 'N':
		return 5
	case 'R':
		return 6
	case 'H', 'W':
		return sdxHW
	default:
		return sdxVowel // A, E, I, O, U, Y
	}
}

// soundexEncode produces the 4-character American Soundex code of a unit
// sequence. The first letter is kept; later letters map to digit classes,
// with adjacent duplicates collapsed, including duplicates separated only
// by H or W. Non-letters are dropped from consideration, so a string with
// no letters at all encodes to "0000" — the same code an empty string gets.
//
// The returned count is the number of units outside printable ASCII
// (below space or above tilde); the caller reports those through the
// diagnostic channel.
func soundexEncode(s []rune) (code [4]byte, outOfRange int) {
	code = [4]byte{'0', '0', '0', '0'}
	n := 0
	last := sdxVowel

	for _, r := range s {
		if !ascii.IsPrintable(r) {
			outOfRange++
		}
		if r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		if r < 'A' || r > 'Z' {
			continue
		}
		c := soundexClass(r)
		if n == 0 {
			code[0] = byte(r)
			n = 1
			last = c
			continue
		}
		switch c {
		case sdxHW:
			// transparent: the previous class still suppresses duplicates
		case sdxVowel:
			last = sdxVowel
		default:
			if c != last && n < 4 {
				code[n] = byte('0' + c)
				n++
			}
			last = c
		}
	}
	return code, outOfRange
}

// soundex compares the Soundex codes of a and b: 0 when equal, 1 otherwise.
// Units outside printable ASCII are tallied on the kernel state so the
// driver can emit a single warning per call; encoding proceeds regardless.
func (k *kernelState) soundex(a, b []rune) float64 {
	ca, oorA := soundexEncode(a)
	cb, oorB := soundexEncode(b)
	k.outOfRange += oorA + oorB

	var d float64
	if ca != cb {
		d = 1
	}
	if cap := k.ro.cap; cap > 0 && d > cap {
		return math.Inf(1)
	}
	return d
}

// SoundexCode exposes the Soundex encoding itself, mainly for diagnostics
// and tooling. The boolean reports whether every unit was printable ASCII.
func SoundexCode(s string) (string, bool) {
	code, oor := soundexEncode([]rune(s))
	return string(code[:]), oor == 0
}
