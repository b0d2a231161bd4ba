package connect

import (
	"fmt"

	"github.com/delaneyj/storeparty/store"
	"github.com/delaneyj/storeparty/subscription"
)

// Binding is the connect style consumer: a pipeline plus a subscription
// node plus the latest own props. On every store notification it recomputes
// merged props against the own props of the last render and requests a
// re-render only when the merged output actually changed.
//
// A binding with a nil state mapper never subscribes to the store at all,
// its props can only change through Render.
type Binding[S any] struct {
	store    store.Store[S]
	node     *subscription.Node
	pipeline *Pipeline[S]
	onRender func()

	ownProps   Props
	subErr     error
	subscribes bool
	installed  bool
	closed     bool
}

// NewBinding builds the consumer under parent (nil for a root consumer).
// mapState and mapDispatch accept the adapter's mapper shapes, merge may be
// nil for DefaultMerge.
func NewBinding[S any](st store.Store[S], parent *subscription.Node, mapState, mapDispatch any, merge MergeFunc, opts ...Option) (*Binding[S], error) {
	o := newOptions(opts...)
	pipeline, err := NewPipeline[S](st.Dispatch, mapState, mapDispatch, merge, opts...)
	if err != nil {
		return nil, err
	}
	b := &Binding[S]{
		store:      st,
		pipeline:   pipeline,
		onRender:   o.onRender,
		subscribes: pipeline.observesState(),
	}
	if b.onRender == nil {
		b.onRender = func() {}
	}
	b.node = subscription.NewNode(st, parent)
	return b, nil
}

// Render computes the merged props for this render pass and records
// ownProps as the ones future subscription checks combine with. Mapper and
// merge panics come back as errors, wrapping any prior subscription check
// failure for correlation.
func (b *Binding[S]) Render(ownProps Props) (Props, error) {
	if b.closed {
		return nil, ErrClosed
	}
	merged, err := b.pipeline.Compute(b.store.GetState(), ownProps)
	if err != nil {
		if b.subErr != nil {
			err = fmt.Errorf("%w (subscription check had already failed: %w)", err, b.subErr)
		}
		return nil, err
	}
	b.ownProps = ownProps
	return merged, nil
}

// Commit clears any stored subscription error and, on the first commit of a
// store reading binding, installs the change listener, subscribes the node
// and runs the check once to reconcile a mutation that happened between
// Render and now.
func (b *Binding[S]) Commit() {
	if b.closed {
		return
	}
	b.subErr = nil
	if b.installed || !b.subscribes {
		return
	}
	b.installed = true
	b.node.SetListener(b.checkForUpdates)
	b.node.Subscribe()
	b.checkForUpdates()
}

// Close detaches the binding from the store, clearing the listener first so
// an in-flight notification runs nothing here. Safe to call more than once.
func (b *Binding[S]) Close() {
	if b.closed {
		return
	}
	b.closed = true
	b.node.ClearListener()
	b.node.Unsubscribe()
}

// Node exposes the binding's subscription node so descendant consumers can
// attach under it.
func (b *Binding[S]) Node() *subscription.Node {
	return b.node
}

// Pipeline exposes the underlying props pipeline, mostly for tests and
// benchmarks.
func (b *Binding[S]) Pipeline() *Pipeline[S] {
	return b.pipeline
}

// checkForUpdates recomputes merged props with the latest state and the own
// props of the last render. In pure mode an unchanged merged output is a
// no-op, impure pipelines always count as changed. A computation error is
// stored for the next Render to surface and a re-render is requested to
// force that render.
func (b *Binding[S]) checkForUpdates() {
	if b.closed {
		return
	}
	if _, err := b.pipeline.Compute(b.store.GetState(), b.ownProps); err != nil {
		b.subErr = err
		b.onRender()
		return
	}
	if b.pipeline.Changed() {
		b.onRender()
	}
}
