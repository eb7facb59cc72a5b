package stringdist

import (
	"fmt"
	"math"

	"github.com/fulmenhq/gostringdist/config"
)

// Options configures a distance computation. Only the members relevant to
// the chosen method are read; the rest are ignored.
//
// Note: the zero value is not a usable configuration (zero weights and a
// zero MaxDist fail validation). Start from DefaultOptions() and override
// fields as needed.
type Options struct {
	// Weights are the edit penalties, in order: deletion, insertion,
	// substitution, transposition. Each must be finite and in (0, 1].
	// OSA and DamerauLevenshtein read all four, Levenshtein the first
	// three. JaroWinkler reinterprets the first three as the weight on the
	// characters of the first string, the weight on the characters of the
	// second string, and the transposition weight. Hamming, LCS, the
	// q-gram family and Soundex ignore weights.
	//
	// Deletion and insertion are seen from the perspective of turning the
	// second string into the first: deleting a unit of b costs Weights[0],
	// inserting a unit of a costs Weights[1].
	Weights []float64

	// Q is the q-gram size for QGram, Cosine and Jaccard. Must be >= 0.
	// With Q = 0 every string has an empty q-gram profile and the three
	// distances degenerate to 0.
	Q int

	// P is the Winkler prefix scaling factor for JaroWinkler, in
	// [0, 0.25]. P = 0 disables the prefix boost (plain Jaro).
	P float64

	// MaxDist caps the reported distance. Distances that provably exceed
	// it come back as +Inf, which also lets kernels terminate early. Must
	// be positive; +Inf means uncapped.
	MaxDist float64

	// UseBytes compares raw bytes instead of decoded code points. No UTF-8
	// validation is performed in byte mode.
	UseBytes bool

	// NThreads is the worker count for the batch drivers. 0 selects the
	// process default (logical CPUs as reported by runtime.NumCPU, not
	// physical cores, minus one, bounded by OMP_THREAD_LIMIT; see the
	// config package).
	NThreads int
}

// DefaultOptions returns the standard configuration: unit weights, q = 1,
// no prefix boost, no distance cap, code-point units, default threads.
func DefaultOptions() Options {
	return Options{
		Weights: []float64{1, 1, 1, 1},
		Q:       1,
		P:       0,
		MaxDist: math.Inf(1),
	}
}

// MatchOptions configures NearestMatch and Contains.
//
// Note: MatchAbsent defaults to true per the matching contract, but the Go
// zero value for bool is false. Start from DefaultMatchOptions() and
// override fields as needed.
type MatchOptions struct {
	Options

	// NoMatch is the sentinel returned when no table entry survives the
	// MaxDist cap.
	NoMatch int

	// MatchAbsent controls absent queries: when true an absent query
	// matches the first absent table entry; when false it yields NoMatch.
	MatchAbsent bool
}

// DefaultMatchOptions returns DefaultOptions plus NoMatch = -1 and
// MatchAbsent = true.
func DefaultMatchOptions() MatchOptions {
	return MatchOptions{
		Options:     DefaultOptions(),
		NoMatch:     -1,
		MatchAbsent: true,
	}
}

// resolved is the validated, defaulted form of Options consumed by the
// kernels and drivers.
type resolved struct {
	method   Method
	weights  [4]float64
	q        int
	p        float64
	maxDist  float64 // caller's cap; +Inf when uncapped
	cap      float64 // internal kernel cap protocol, see resolveOptions
	useBytes bool
	threads  int
}

// resolveOptions validates opts for method and fills in process defaults.
// All preconditions are checked here, before any input is decoded.
//
// The cap field preserves a historical protocol detail: for methods outside
// the edit-distance family the kernel layer encodes "uncapped" as 0, so an
// uncapped MaxDist of +Inf is coerced to 0 on the way in. Edit-distance
// kernels take the cap at face value, +Inf included.
func resolveOptions(method Method, opts Options) (resolved, error) {
	var r resolved
	if !methods[method] {
		return r, fmt.Errorf("%w: unknown method %q", ErrInvalidArgument, method)
	}
	r.method = method

	if arity := method.weightArity(); arity > 0 {
		if len(opts.Weights) < arity {
			return r, fmt.Errorf("%w: method %s needs %d weights, got %d",
				ErrInvalidArgument, method, arity, len(opts.Weights))
		}
		for i := 0; i < arity; i++ {
			w := opts.Weights[i]
			if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 || w > 1 {
				return r, fmt.Errorf("%w: weight[%d] = %v outside (0, 1]",
					ErrInvalidArgument, i, w)
			}
			r.weights[i] = w
		}
	}

	if opts.Q < 0 {
		return r, fmt.Errorf("%w: q = %d must be >= 0", ErrInvalidArgument, opts.Q)
	}
	r.q = opts.Q

	if math.IsNaN(opts.P) || opts.P < 0 || opts.P > 0.25 {
		return r, fmt.Errorf("%w: p = %v outside [0, 0.25]", ErrInvalidArgument, opts.P)
	}
	r.p = opts.P

	if math.IsNaN(opts.MaxDist) || opts.MaxDist <= 0 {
		return r, fmt.Errorf("%w: maxDist = %v must be positive", ErrInvalidArgument, opts.MaxDist)
	}
	r.maxDist = opts.MaxDist
	if method.editBased() {
		r.cap = opts.MaxDist
	} else if math.IsInf(opts.MaxDist, 1) {
		r.cap = 0 // kernel protocol: 0 means uncapped for non-edit methods
	} else {
		r.cap = opts.MaxDist
	}

	r.useBytes = opts.UseBytes

	r.threads = opts.NThreads
	if r.threads == 0 {
		r.threads = config.Threads()
	}
	if r.threads <= 0 {
		return r, fmt.Errorf("%w: nthread = %d must be positive", ErrInvalidArgument, opts.NThreads)
	}

	return r, nil
}
