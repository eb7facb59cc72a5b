package stringdist

import "math"

// hamming counts positions with differing units. The distance is only
// defined for equal-length sequences; anything else is +Inf. Weights are
// ignored.
func (k *kernelState) hamming(a, b []rune) float64 {
	if len(a) != len(b) {
		return math.Inf(1)
	}
	cap := k.ro.cap
	d := 0.0
	for i := range a {
		if a[i] != b[i] {
			d++
			if d > cap {
				return math.Inf(1)
			}
		}
	}
	return d
}
