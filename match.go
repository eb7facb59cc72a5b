package stringdist

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
)

// NearestMatch finds, for every query in x, the nearest entry of table.
//
// Returned indices are 1-based; opts.NoMatch marks queries where no table
// entry survives the opts.MaxDist cap. Ties break to the earliest table
// index. A scan short-circuits on an exact match (distance 0), which the
// tie-break makes safe: a later entry can never displace an equal earlier
// one.
//
// Absent queries follow opts.MatchAbsent: when true they match the first
// absent table entry (or NoMatch if the table has none), when false they
// yield NoMatch. Absent table entries are skipped while scanning.
//
// The table is decoded once up front; a table entry that fails UTF-8
// decoding aborts the call, since every query would hit it. Query decode
// failures are per-query: the query yields NoMatch and an aggregated
// diagnostic is emitted. Thread partitioning is over the queries, never
// the table.
//
// Example:
//
//	opts := stringdist.DefaultMatchOptions()
//	opts.MaxDist = 1
//	idx, _ := stringdist.NearestMatch(ctx, stringdist.Strs("aa"),
//		stringdist.Strs("ba", "bb"), stringdist.OSA, opts)
//	// idx[0] == 1: "ba" is one substitution away, "bb" is over the cap
func NearestMatch(ctx context.Context, x, table []Str, method Method, opts MatchOptions) ([]int, error) {
	ro, err := resolveOptions(method, opts.Options)
	if err != nil {
		return nil, err
	}
	if len(x) == 0 {
		return nil, nil
	}

	units := make([][]rune, len(table))
	firstAbsent := 0
	for j, t := range table {
		if t.Absent {
			if firstAbsent == 0 {
				firstAbsent = j + 1
			}
			continue
		}
		u, err := decodeInto(nil, t.Value, ro.useBytes)
		if err != nil {
			return nil, fmt.Errorf("table entry %d: %w", j, err)
		}
		units[j] = u
	}

	out := make([]int, len(x))

	n := len(x)
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
				q := x[i]

				if q.Absent {
					if opts.MatchAbsent && firstAbsent > 0 {
						out[i] = firstAbsent
					} else {
						out[i] = opts.NoMatch
					}
					continue
				}

				var derr error
				k.bufA, derr = decodeInto(k.bufA, q.Value, ro.useBytes)
				if derr != nil {
					out[i] = opts.NoMatch
					encErrs.Add(1)
					continue
				}

				best := math.Inf(1)
				bestJ := 0
				for j := range table {
					if table[j].Absent {
						continue
					}
					d := k.distance(k.bufA, units[j])
					if d <= ro.maxDist && d < best {
						best = d
						bestJ = j + 1
						if d == 0 {
							break
						}
					}
				}
				if bestJ > 0 {
					out[i] = bestJ
				} else {
					out[i] = opts.NoMatch
				}
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

// Contains reports, for every query in x, whether table holds an entry
// within opts.MaxDist. It is defined elementwise as
// NearestMatch(..., nomatch=0, ...) > 0; opts.NoMatch is ignored.
func Contains(ctx context.Context, x, table []Str, method Method, opts MatchOptions) ([]bool, error) {
	o := opts
	o.NoMatch = 0
	idx, err := NearestMatch(ctx, x, table, method, o)
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(idx))
	for i, v := range idx {
		out[i] = v > 0
	}
	return out, nil
}
