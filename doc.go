/*
Package stringdist implements approximate string matching: a family of
string-distance algorithms and the vectorized drivers that apply them to
whole input vectors.

# Overview

Ten method identifiers are served by eight kernels (the three q-gram
profile distances share one): the weighted edit
distances (OSA, Levenshtein, unrestricted Damerau-Levenshtein), Hamming and
LCS distance, the q-gram profile distances (qgram, cosine, jaccard), the
Jaro-Winkler distance and Soundex equality. All of them operate on unit
sequences — Unicode code points by default, raw bytes with
Options.UseBytes — so byte-equal encodings always compare identically in
byte mode.

# Distances

Single pair:

	d, err := stringdist.Distance("kitten", "sitting",
		stringdist.Levenshtein, stringdist.DefaultOptions())
	// d == 3

Vectorized, with recycling of the shorter input:

	d, err := stringdist.Pairwise(ctx,
		stringdist.Strs("foo", "bar", "baz"),
		stringdist.Strs("bar"),
		stringdist.OSA, stringdist.DefaultOptions())
	// len(d) == 3

Absent values (stringdist.Absent) propagate: a pair with an absent operand
produces an absent result, reported by stringdist.IsAbsent. Distances that
provably exceed Options.MaxDist are reported as +Inf, which also lets the
kernels terminate early.

# Matching against a table

NearestMatch returns, per query, the 1-based index of the nearest table
entry within the cap, or the NoMatch sentinel:

	opts := stringdist.DefaultMatchOptions()
	opts.MaxDist = 2
	idx, err := stringdist.NearestMatch(ctx, queries, table,
		stringdist.DamerauLevenshtein, opts)

Contains is the boolean view of the same scan. Both drivers parallelize
over the queries with the same worker model as Pairwise.

# Concurrency

Batch calls fan out over Options.NThreads workers (default: logical CPUs
as reported by runtime.NumCPU, not physical cores, minus one, bounded by
OMP_THREAD_LIMIT; see the config package). Each
worker owns its decode buffers, DP scratch and q-gram store, result writes
are disjoint by index, and no locks are taken on the hot path.
Cancellation through the context is cooperative at work-item boundaries.

# Diagnostics

Conditions that do not abort a call — Soundex inputs outside printable
ASCII, per-item UTF-8 decode failures — surface as Warning events on the
diagnostic channel. Install a handler with SetDiagnosticHandler; the
default logs through the logging package.

# Errors

All errors wrap one of ErrInvalidArgument, ErrEncoding, ErrOutOfRange or
ErrCancelled, so callers classify with errors.Is. Validation happens
before any input is decoded.
*/
package stringdist
