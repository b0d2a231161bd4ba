package selector

import "github.com/delaneyj/storeparty/equality"

// Option tweaks a derived selector at construction time.
type Option func(*derivedOptions)

type derivedOptions struct {
	equals equality.Func
}

// WithEquals replaces the per-input comparison. The default is
// equality.Identical.
func WithEquals(fn equality.Func) Option {
	return func(o *derivedOptions) { o.equals = fn }
}

func newDerivedOptions(opts ...Option) derivedOptions {
	o := derivedOptions{equals: equality.Identical}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// derived is the cache every arity variant shares: the last output, a
// first-computation flag, and a combiner invocation counter tests and
// benchmarks can observe.
type derived[O any] struct {
	equals   equality.Func
	value    O
	computed bool
	computes int
}

func newDerived[O any](opts []Option) derived[O] {
	o := newDerivedOptions(opts...)
	return derived[O]{equals: o.equals}
}

// Computes reports how many times the combiner has run.
func (d *derived[O]) Computes() int {
	return d.computes
}
