package stringdist

import "math"

// lcs computes the longest-common-subsequence edit distance
// |a| + |b| - 2*LCS(a, b): the cost of editing a into b with insertions and
// deletions only. Weights are ignored.
//
// The length difference is a lower bound on the distance, which gives a
// cheap pre-check against the cap before running the O(m*n) dynamic
// program over two reused rows.
func (k *kernelState) lcs(a, b []rune) float64 {
	cap := k.ro.cap
	la, lb := len(a), len(b)

	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	if float64(diff) > cap {
		return math.Inf(1)
	}
	if la == 0 || lb == 0 {
		return capResult(float64(la+lb), cap)
	}

	k.row0 = growFloats(k.row0, lb+1)
	k.row1 = growFloats(k.row1, lb+1)
	prev, curr := k.row0, k.row1

	for j := 0; j <= lb; j++ {
		prev[j] = 0
	}
	for i := 1; i <= la; i++ {
		curr[0] = 0
		for j := 1; j <= lb; j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	return capResult(float64(la+lb)-2*prev[lb], cap)
}
