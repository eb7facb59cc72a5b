package stringdist

import "math"

// damerau implements the unrestricted Damerau-Levenshtein distance
// (Lowrance-Wagner). Unlike OSA, a transposed pair may be edited again, so
// "CA" -> "ABC" costs 2 here but 3 under OSA.
//
// The algorithm tracks, for every unit, the last row of a where it was
// seen (k.da) and, per row, the last column of b that matched (db). The
// transposition edge jumps back to that (row, column) pair and pays for the
// units skipped in between: skipped units of a at the insertion weight,
// skipped units of b at the deletion weight.
//
// A full (m+2) x (n+2) matrix is required; it lives in reused scratch so
// repeated calls do not allocate once grown.
//
// Early termination: when a whole row (column 0 included) exceeds the cap
// the kernel reports +Inf. A transposition edge can skip rows, so this exit
// is only taken when the transposition weight is at least the insertion
// weight; then any alignment that skips a row costs at least as much as
// that row's minimum.
func (k *kernelState) damerau(a, b []rune) float64 {
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

	// Sentinel larger than any reachable path cost.
	inf := float64(la+lb) + 1

	stride := lb + 2
	k.mat = growFloats(k.mat, (la+2)*stride)
	h := k.mat
	at := func(i, j int) int { return i*stride + j }

	h[at(0, 0)] = inf
	for i := 0; i <= la; i++ {
		h[at(i+1, 0)] = inf
		h[at(i+1, 1)] = float64(i) * wIns
	}
	for j := 0; j <= lb; j++ {
		h[at(0, j+1)] = inf
		h[at(1, j+1)] = float64(j) * wDel
	}

	clear(k.da)
	for i := 1; i <= la; i++ {
		db := 0
		rowMin := h[at(i+1, 1)]
		for j := 1; j <= lb; j++ {
			i1 := k.da[b[j-1]]
			j1 := db

			cost := wSub
			if a[i-1] == b[j-1] {
				cost = 0
				db = j
			}

			d := h[at(i, j)] + cost
			if del := h[at(i+1, j)] + wDel; del < d {
				d = del
			}
			if ins := h[at(i, j+1)] + wIns; ins < d {
				d = ins
			}
			tr := h[at(i1, j1)] + float64(i-i1-1)*wIns + wTrans + float64(j-j1-1)*wDel
			if tr < d {
				d = tr
			}

			h[at(i+1, j+1)] = d
			if d < rowMin {
				rowMin = d
			}
		}
		k.da[a[i-1]] = i

		if rowMin > cap && wTrans >= wIns {
			return math.Inf(1)
		}
	}

	return capResult(h[at(la+1, lb+1)], cap)
}
