package stringdist

import "errors"

// Error kinds surfaced by the stringdist package.
//
// All errors returned by the public API wrap one of these sentinels, so
// callers can classify failures with errors.Is:
//
//	_, err := stringdist.Pairwise(ctx, x, y, stringdist.Hamming, opts)
//	if errors.Is(err, stringdist.ErrInvalidArgument) { ... }
var (
	// ErrInvalidArgument reports a violated precondition (weight range or
	// arity, q, p, maxDist, thread count). Validation runs before any
	// decoding, so no partial work has happened when it is returned.
	ErrInvalidArgument = errors.New("stringdist: invalid argument")

	// ErrEncoding reports that UTF-8 decoding of an input string failed.
	// In Pairwise this is a per-item failure: the affected result becomes
	// absent and a diagnostic is emitted; the call continues. In
	// NearestMatch and Contains a failing query yields NoMatch plus a
	// diagnostic, while a failing table entry aborts the call with this
	// error. Distance returns it directly.
	ErrEncoding = errors.New("stringdist: invalid UTF-8 input")

	// ErrOutOfRange reports a non-printable or non-ASCII unit where only
	// printable ASCII is meaningful (Soundex). No function returns it: the
	// drivers and Distance report the condition as a WarnOutOfRange warning
	// on the diagnostic channel instead.
	ErrOutOfRange = errors.New("stringdist: unit out of printable ASCII range")

	// ErrCancelled reports cooperative cancellation through the context.
	// Partial results are discarded.
	ErrCancelled = errors.New("stringdist: cancelled")
)
