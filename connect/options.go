package connect

import (
	"github.com/delaneyj/storeparty/diag"
	"github.com/delaneyj/storeparty/equality"
)

type options struct {
	pure                bool
	equals              equality.Func
	areStatesEqual      equality.Func
	areOwnPropsEqual    equality.Func
	areStatePropsEqual  equality.Func
	areMergedPropsEqual equality.Func
	reporter            *diag.Reporter
	name                string
	onRender            func()
}

// Option tweaks a consumer at construction time.
type Option func(*options)

func newOptions(opts ...Option) options {
	o := options{
		pure:                true,
		equals:              equality.Identical,
		areStatesEqual:      equality.Shallow,
		areOwnPropsEqual:    equality.Shallow,
		areStatePropsEqual:  equality.Shallow,
		areMergedPropsEqual: equality.Shallow,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Impure turns memoization off: every computation runs all three prop sources
// and the merge again and always counts as changed.
func Impure() Option {
	return func(o *options) { o.pure = false }
}

// WithEquals replaces the selected value comparison of a reader. The default
// is identity.
func WithEquals(fn equality.Func) Option {
	return func(o *options) { o.equals = fn }
}

// AreStatesEqual replaces the whole state comparison of a pure pipeline.
func AreStatesEqual(fn equality.Func) Option {
	return func(o *options) { o.areStatesEqual = fn }
}

// AreOwnPropsEqual replaces the own props comparison of a pure pipeline.
func AreOwnPropsEqual(fn equality.Func) Option {
	return func(o *options) { o.areOwnPropsEqual = fn }
}

// AreStatePropsEqual replaces the state props comparison of a pure pipeline.
func AreStatePropsEqual(fn equality.Func) Option {
	return func(o *options) { o.areStatePropsEqual = fn }
}

// AreMergedPropsEqual replaces the merged props comparison of a pure
// pipeline.
func AreMergedPropsEqual(fn equality.Func) Option {
	return func(o *options) { o.areMergedPropsEqual = fn }
}

// WithReporter routes shape warnings to a diagnostics reporter. Without one
// the consumer runs in production mode and skips the checks entirely.
func WithReporter(reporter *diag.Reporter) Option {
	return func(o *options) { o.reporter = reporter }
}

// OnRender installs the re-render request callback. The rendering engine
// owns scheduling and coalescing, the consumer only promises it never calls
// this for an unchanged output.
func OnRender(fn func()) Option {
	return func(o *options) { o.onRender = fn }
}

// WithName labels the consumer in diagnostics output.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}
