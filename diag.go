package stringdist

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/fulmenhq/gostringdist/logging"
)

// Warning codes carried on diagnostic events.
const (
	// WarnOutOfRange reports Soundex inputs containing units outside
	// printable ASCII. The call proceeds; results for such inputs may be
	// surprising.
	WarnOutOfRange = "OUT_OF_RANGE"

	// WarnEncoding reports per-item UTF-8 decode failures inside a batch
	// call. The affected results are absent (Pairwise) or NoMatch
	// (NearestMatch, Contains); the call proceeds.
	WarnEncoding = "ENCODING"
)

// Warning is an observable diagnostic event. Warnings never abort a call;
// they surface demoted per-item conditions such as Soundex out-of-range
// units or per-item decode failures.
type Warning struct {
	// Code is one of the Warn* constants.
	Code string

	// Message is a human-readable description.
	Message string

	// Method is the algorithm the batch was running.
	Method Method

	// CorrelationID ties all diagnostics of one batch call together.
	CorrelationID string

	// Count is the number of occurrences aggregated into this event.
	Count int
}

// DiagnosticHandler receives warnings. Handlers must be safe for concurrent
// use; the drivers emit at most a handful of aggregated events per call,
// after the workers have finished.
type DiagnosticHandler func(Warning)

var (
	diagMu      sync.RWMutex
	diagHandler DiagnosticHandler
)

// SetDiagnosticHandler installs a handler for diagnostic events, replacing
// the default (which logs through the logging package at warn level).
// Passing nil restores the default.
func SetDiagnosticHandler(h DiagnosticHandler) {
	diagMu.Lock()
	diagHandler = h
	diagMu.Unlock()
}

func emitWarning(w Warning) {
	diagMu.RLock()
	h := diagHandler
	diagMu.RUnlock()
	if h != nil {
		h(w)
		return
	}
	logWarning(w)
}

var (
	diagLogOnce sync.Once
	diagLog     *zap.Logger
)

// logWarning is the default diagnostic sink: a console logger at warn
// level, built once on first use.
func logWarning(w Warning) {
	diagLogOnce.Do(func() {
		lg, err := logging.New(&logging.Config{Level: "warn", Console: true})
		if err != nil {
			lg = zap.NewNop()
		}
		diagLog = lg
	})
	diagLog.Warn(w.Message,
		zap.String("code", w.Code),
		zap.String("method", string(w.Method)),
		zap.String("correlation_id", w.CorrelationID),
		zap.Int("count", w.Count),
	)
}

// newCorrelationID mints the id that ties a batch call's diagnostics
// together.
func newCorrelationID() string {
	return uuid.NewString()
}
