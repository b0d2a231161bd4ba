package diag

import (
	"github.com/cespare/xxhash/v2"
	mapset "github.com/deckarep/golang-set/v2"
)

// Reporter is the developer facing diagnostics channel. It is an explicit
// construction time choice, not an ambient environment flag: a nil Reporter
// is production mode and every call through it is a no-op.
//
// Each distinct message is reported once per Reporter, repeats are dropped so
// a warning inside a hot recompute path cannot flood the log.
type Reporter struct {
	logger Logger
	seen   mapset.Set[uint64]
}

// NewReporter builds a reporter over the given logger. A nil logger yields a
// nil, disabled reporter.
func NewReporter(logger Logger) *Reporter {
	if logger == nil {
		return nil
	}
	return &Reporter{
		logger: logger,
		seen:   mapset.NewSet[uint64](),
	}
}

// Disabled is the production mode reporter. It exists so construction sites
// can spell the choice out.
func Disabled() *Reporter {
	return nil
}

// Enabled reports whether warnings go anywhere.
func (r *Reporter) Enabled() bool {
	return r != nil
}

// Warn reports msg once. Later calls with the same msg are dropped, the
// key-value details of the first call win.
func (r *Reporter) Warn(msg string, keysAndValues ...any) {
	if r == nil {
		return
	}
	if !r.seen.Add(xxhash.Sum64String(msg)) {
		return
	}
	r.logger.Warn(msg, keysAndValues...)
}
