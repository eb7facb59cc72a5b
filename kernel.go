package stringdist

// kernelState bundles one worker's kernel dispatch with its reusable
// scratch: decode buffers, dynamic-programming rows, the Damerau matrix and
// last-seen map, Jaro match flags and the q-gram store. Workers never share
// a state, so none of this needs locking, and once the scratch has grown to
// the input size the inner loops stop allocating.
type kernelState struct {
	ro resolved

	bufA, bufB []rune

	row0, row1, row2 []float64
	mat              []float64
	da               map[rune]int

	flagsA, flagsB []bool

	store *qgramStore

	// outOfRange tallies Soundex units outside printable ASCII for the
	// per-call diagnostic.
	outOfRange int
}

func newKernelState(ro resolved) *kernelState {
	k := &kernelState{ro: ro}
	if ro.method == DamerauLevenshtein {
		k.da = make(map[rune]int)
	}
	if ro.method.usesQGrams() {
		k.store = newQgramStore()
	}
	return k
}

// distance dispatches a decoded pair to the configured kernel.
//
// JaroWinkler note: the caller-facing weight order is (weight on a's
// characters, weight on b's characters, transposition weight), while the
// kernel expects the weight on b's characters first. The permutation
// happens here, once, so neither callers nor the kernel can get it wrong.
func (k *kernelState) distance(a, b []rune) float64 {
	switch k.ro.method {
	case OSA:
		return k.osa(a, b)
	case Levenshtein:
		return k.levenshtein(a, b)
	case DamerauLevenshtein:
		return k.damerau(a, b)
	case Hamming:
		return k.hamming(a, b)
	case LCS:
		return k.lcs(a, b)
	case QGram, Cosine, Jaccard:
		return k.qgramFamily(a, b)
	case JaroWinkler:
		return k.jaroWinkler(a, b, k.ro.weights[1], k.ro.weights[0], k.ro.weights[2])
	case Soundex:
		return k.soundex(a, b)
	}
	panic("stringdist: unreachable method " + string(k.ro.method))
}

func growFloats(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	return buf[:n]
}

func growBools(buf []bool, n int) []bool {
	if cap(buf) < n {
		return make([]bool, n)
	}
	return buf[:n]
}
