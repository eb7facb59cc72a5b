package stringdist

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Pairwise computes elementwise distances between x and y.
//
// The result has length max(len(x), len(y)); the shorter input is recycled
// modulo its length, so the i-th pair is (x[i%len(x)], y[i%len(y)]). If
// either input is empty the result is empty. When either operand of a pair
// is absent the result element is absent (see IsAbsent) and no kernel runs.
// Distances that provably exceed opts.MaxDist come back as +Inf.
//
// Work is partitioned into contiguous index blocks across opts.NThreads
// workers; each worker owns its kernel scratch (and q-gram store, for the
// q-gram family), and results land at their input positions, so the output
// order is deterministic. Cancellation through ctx is cooperative at
// work-item boundaries: in-flight items finish, partial results are
// discarded and ErrCancelled is returned.
//
// Per-item failures (UTF-8 decode errors in code-point mode) become absent
// results plus an aggregated diagnostic; only validation errors abort the
// call before any work starts.
//
// Examples:
//
//	d, _ := stringdist.Pairwise(ctx, stringdist.Strs("ab"), stringdist.Strs("ba"),
//		stringdist.OSA, stringdist.DefaultOptions())
//	// d[0] == 1 (one transposition)
//
//	d, _ := stringdist.Pairwise(ctx, stringdist.Strs("a", "b", "c"), stringdist.Strs("a"),
//		stringdist.Levenshtein, stringdist.DefaultOptions())
//	// len(d) == 3, the single-element y recycled against every x
func Pairwise(ctx context.Context, x, y []Str, method Method, opts Options) ([]float64, error) {
	ro, err := resolveOptions(method, opts)
	if err != nil {
		return nil, err
	}
	if len(x) == 0 || len(y) == 0 {
		return nil, nil
	}

	n := len(x)
	if len(y) > n {
		n = len(y)
	}
	out := make([]float64, n)

	workers := ro.threads
	if workers > n {
		workers = n
	}

	var (
		wg         sync.WaitGroup
		cancelled  atomic.Bool
		encErrs    atomic.Int64
		outOfRange atomic.Int64
	)
	for w := 0; w < workers; w++ {
		lo := w * n / workers
		hi := (w + 1) * n / workers
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			k := newKernelState(ro)
			defer outOfRange.Add(int64(k.outOfRange))
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					cancelled.Store(true)
					return
				}
				sx := x[i%len(x)]
				sy := y[i%len(y)]
				if sx.Absent || sy.Absent {
					out[i] = absentResult()
					continue
				}
				var derr error
				k.bufA, derr = decodeInto(k.bufA, sx.Value, ro.useBytes)
				if derr == nil {
					k.bufB, derr = decodeInto(k.bufB, sy.Value, ro.useBytes)
				}
				if derr != nil {
					out[i] = absentResult()
					encErrs.Add(1)
					continue
				}
				out[i] = k.distance(k.bufA, k.bufB)
			}
		}(lo, hi)
	}
	wg.Wait()

	if cancelled.Load() {
		return nil, fmt.Errorf("%w: %v", ErrCancelled, context.Cause(ctx))
	}
	emitBatchDiagnostics(method, encErrs.Load(), outOfRange.Load())
	return out, nil
}

// Distance computes a single pairwise distance. It is a convenience wrapper
// over the same validation, decoding and kernels as Pairwise, without the
// worker machinery. Decode failures are returned as ErrEncoding.
func Distance(a, b string, method Method, opts Options) (float64, error) {
	if opts.NThreads == 0 {
		opts.NThreads = 1
	}
	ro, err := resolveOptions(method, opts)
	if err != nil {
		return 0, err
	}
	k := newKernelState(ro)
	if k.bufA, err = decodeInto(k.bufA, a, ro.useBytes); err != nil {
		return 0, err
	}
	if k.bufB, err = decodeInto(k.bufB, b, ro.useBytes); err != nil {
		return 0, err
	}
	d := k.distance(k.bufA, k.bufB)
	emitBatchDiagnostics(method, 0, int64(k.outOfRange))
	return d, nil
}

// emitBatchDiagnostics flushes the aggregated per-call warnings, one event
// per condition, sharing a correlation id.
func emitBatchDiagnostics(method Method, encErrs, outOfRange int64) {
	if encErrs == 0 && outOfRange == 0 {
		return
	}
	corr := newCorrelationID()
	if outOfRange > 0 {
		emitWarning(Warning{
			Code:          WarnOutOfRange,
			Message:       "soundex encountered units outside printable ASCII; results may be unexpected",
			Method:        method,
			CorrelationID: corr,
			Count:         int(outOfRange),
		})
	}
	if encErrs > 0 {
		emitWarning(Warning{
			Code:          WarnEncoding,
			Message:       "invalid UTF-8 input; affected results are absent or unmatched",
			Method:        method,
			CorrelationID: corr,
			Count:         int(encErrs),
		})
	}
}
