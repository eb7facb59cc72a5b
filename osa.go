package stringdist

import "math"

// osa implements weighted Optimal String Alignment distance.
//
// OSA is a variant of Damerau-Levenshtein distance with a restriction:
// a transposed pair cannot be edited again. That makes it a good model for
// common typing errors while keeping the simple three-row dynamic program.
//
// The rows run over the units of a, the columns over b. Deletion and
// insertion weights follow the documented orientation (Options.Weights):
// consuming a unit of b costs the deletion weight, consuming a unit of a
// costs the insertion weight.
//
// Early termination: a transposition skips at most one row, so every
// alignment passes through at least one of any two consecutive rows. Once
// every entry of two consecutive rows exceeds the cap the true distance
// cannot come back under it, so the kernel gives up and reports +Inf.
//
// Time complexity O(m*n), space O(n) across three reused rows.
func (k *kernelState) osa(a, b []rune) float64 {
	wDel := k.ro.weights[0]
	wIns := k.ro.weights[1]
	wSub := k.ro.weights[2]
	wTrans := k.ro.weights[3]
	cap := k.ro.cap

	la, lb := len(a), len(b)
	if la == 0 {
		return capResult(float64(lb)*wDel, cap)
	}
	if lb == 0 {
		return capResult(float64(la)*wIns, cap)
	}

	k.row0 = growFloats(k.row0, lb+1)
	k.row1 = growFloats(k.row1, lb+1)
	k.row2 = growFloats(k.row2, lb+1)
	prev2, prev, curr := k.row0, k.row1, k.row2

	for j := 0; j <= lb; j++ {
		prev[j] = float64(j) * wDel
	}
	prevMin := 0.0

	for i := 1; i <= la; i++ {
		curr[0] = float64(i) * wIns
		rowMin := curr[0]

		for j := 1; j <= lb; j++ {
			d := prev[j] + wIns
			if ins := curr[j-1] + wDel; ins < d {
				d = ins
			}
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub += wSub
			}
			if sub < d {
				d = sub
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if tr := prev2[j-2] + wTrans; tr < d {
					d = tr
				}
			}
			curr[j] = d
			if d < rowMin {
				rowMin = d
			}
		}

		if rowMin > cap && prevMin > cap {
			return math.Inf(1)
		}
		prevMin = rowMin
		prev2, prev, curr = prev, curr, prev2
	}

	return capResult(prev[lb], cap)
}

// levenshtein implements weighted Levenshtein distance: OSA without the
// transposition branch, so two reused rows suffice.
func (k *kernelState) levenshtein(a, b []rune) float64 {
	wDel := k.ro.weights[0]
	wIns := k.ro.weights[1]
	wSub := k.ro.weights[2]
	cap := k.ro.cap

	la, lb := len(a), len(b)
	if la == 0 {
		return capResult(float64(lb)*wDel, cap)
	}
	if lb == 0 {
		return capResult(float64(la)*wIns, cap)
	}

	k.row0 = growFloats(k.row0, lb+1)
	k.row1 = growFloats(k.row1, lb+1)
	prev, curr := k.row0, k.row1

	for j := 0; j <= lb; j++ {
		prev[j] = float64(j) * wDel
	}

	for i := 1; i <= la; i++ {
		curr[0] = float64(i) * wIns
		rowMin := curr[0]

		for j := 1; j <= lb; j++ {
			d := prev[j] + wIns
			if ins := curr[j-1] + wDel; ins < d {
				d = ins
			}
			sub := prev[j-1]
			if a[i-1] != b[j-1] {
				sub += wSub
			}
			if sub < d {
				d = sub
			}
			curr[j] = d
			if d < rowMin {
				rowMin = d
			}
		}

		if rowMin > cap {
			return math.Inf(1)
		}
		prev, curr = curr, prev
	}

	return capResult(prev[lb], cap)
}

// capResult applies the edit-distance cap to a finished computation.
func capResult(d, cap float64) float64 {
	if d > cap {
		return math.Inf(1)
	}
	return d
}
