package stringdist

import "math"

// jaroWinkler computes the Jaro distance with the optional Winkler
// common-prefix boost.
//
// Units match when they are equal and their positions differ by at most
// floor(max(|a|,|b|)/2) - 1. With m matched units and t half the number of
// out-of-order matches, the Jaro similarity is
//
//	J = (1/3) * (wOnA*m/|a| + wOnB*m/|b| + wT*(m-t)/m)
//
// and the distance is (1 - J) * (1 - l*p) where l is the common prefix
// length capped at 4.
//
// The weight parameters arrive in kernel order: the weight on the second
// string's characters first. The caller-facing order puts the first
// string's weight first; the permutation is the dispatcher's job (see
// kernelState.distance), not the caller's.
func (k *kernelState) jaroWinkler(a, b []rune, wOnB, wOnA, wT float64) float64 {
	cap := k.ro.cap
	p := k.ro.p

	la, lb := len(a), len(b)
	if la == 0 && lb == 0 {
		return 0
	}
	if la == 0 || lb == 0 {
		return jaroCap(1, cap)
	}

	window := la
	if lb > window {
		window = lb
	}
	window = window/2 - 1
	if window < 0 {
		window = 0 // single-unit strings still match in place
	}

	k.flagsA = growBools(k.flagsA, la)
	k.flagsB = growBools(k.flagsB, lb)
	flagsA, flagsB := k.flagsA, k.flagsB
	for i := range flagsA {
		flagsA[i] = false
	}
	for j := range flagsB {
		flagsB[j] = false
	}

	m := 0
	for i := 0; i < la; i++ {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window
		if hi > lb-1 {
			hi = lb - 1
		}
		for j := lo; j <= hi; j++ {
			if !flagsB[j] && b[j] == a[i] {
				flagsA[i] = true
				flagsB[j] = true
				m++
				break
			}
		}
	}
	if m == 0 {
		return jaroCap(1, cap)
	}

	// Out-of-order matches, counted pairwise: t is half the number of
	// positions where the matched subsequences disagree.
	halfTrans := 0
	j := 0
	for i := 0; i < la; i++ {
		if !flagsA[i] {
			continue
		}
		for !flagsB[j] {
			j++
		}
		if a[i] != b[j] {
			halfTrans++
		}
		j++
	}
	t := float64(halfTrans) / 2

	fm := float64(m)
	sim := (wOnA*fm/float64(la) + wOnB*fm/float64(lb) + wT*(fm-t)/fm) / 3

	d := 1 - sim

	// Winkler boost: reward a shared prefix of up to four units.
	l := 0
	for l < la && l < lb && l < 4 && a[l] == b[l] {
		l++
	}
	d *= 1 - float64(l)*p

	return jaroCap(d, cap)
}

// jaroCap applies the non-edit cap protocol, where 0 means uncapped.
func jaroCap(d, cap float64) float64 {
	if cap > 0 && d > cap {
		return math.Inf(1)
	}
	return d
}
