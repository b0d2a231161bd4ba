package connect

import (
	"fmt"

	"github.com/delaneyj/storeparty/equality"
	"github.com/delaneyj/storeparty/store"
	"github.com/delaneyj/storeparty/subscription"
)

// Reader is one consumer's derived state read: it runs a selector over the
// store, caches the selected value, and asks for a re-render only when the
// value changed per its equality function. It owns exactly one subscription
// node, created detached and attached on the first Commit.
//
// The render loop the owning consumer is expected to drive:
//
//	v, err := r.Read()   // render pass, cached unless something went stale
//	...render with v...
//	r.Commit()           // commit: record, attach, reconcile
//
// Everything is synchronous and single threaded, matching the store's
// notification model.
type Reader[S, T any] struct {
	store    store.Store[S]
	node     *subscription.Node
	selector func(S) T
	equals   equality.Func
	onRender func()

	value     T
	hasValue  bool
	lastState S
	hasState  bool
	stale     bool
	subErr    error
	installed bool
	closed    bool
}

// NewReader binds a selector to the store under parent (nil for a root
// consumer). The re-render request goes to the OnRender option's callback.
// The default value comparison is equality.Identical, override with
// WithEquals.
func NewReader[S, T any](st store.Store[S], parent *subscription.Node, selector func(S) T, opts ...Option) *Reader[S, T] {
	o := newOptions(opts...)
	r := &Reader[S, T]{
		store:    st,
		selector: selector,
		equals:   o.equals,
		onRender: o.onRender,
		stale:    true,
	}
	if r.onRender == nil {
		r.onRender = func() {}
	}
	r.node = subscription.NewNode(st, parent)
	return r
}

// Read returns the selected value for this render pass. The selector only
// runs when the cache is stale: first read, selector swapped since the last
// commit, or a subscription check failed. Otherwise the cached value comes
// back without invoking the selector, so a parent re-render with an
// unchanged store is free.
//
// A selector panic is recovered into the returned error. When a prior
// subscription check had already failed, the error wraps it, two
// consecutive failures usually share a root cause in a changed state shape.
func (r *Reader[S, T]) Read() (T, error) {
	var zero T
	if r.closed {
		return zero, ErrClosed
	}
	if !r.stale && r.subErr == nil && r.hasValue {
		return r.value, nil
	}
	state := r.store.GetState()
	v, err := r.evaluate(state)
	if err != nil {
		if r.subErr != nil {
			err = fmt.Errorf("%w (subscription check had already failed: %w)", err, r.subErr)
		}
		return zero, err
	}
	r.value = v
	r.hasValue = true
	r.lastState = state
	r.hasState = true
	r.stale = false
	return v, nil
}

// Commit marks the render as committed: the stored subscription error is
// cleared, and on the first commit the change listener is installed,
// the node subscribed, and the check run once immediately. Listener
// installation and the reconciling check happen in the same synchronous
// phase as the read, so a store mutation between the two cannot be missed.
func (r *Reader[S, T]) Commit() {
	if r.closed {
		return
	}
	r.subErr = nil
	if r.installed {
		return
	}
	r.installed = true
	r.node.SetListener(r.checkForUpdates)
	r.node.Subscribe()
	r.checkForUpdates()
}

// SetSelector swaps the selector for the next render. The cache goes stale,
// the next Read recomputes. Store notifications arriving before that read
// already evaluate the new selector.
func (r *Reader[S, T]) SetSelector(selector func(S) T) {
	r.selector = selector
	r.stale = true
}

// Close detaches the reader from the store. The listener is cleared before
// unsubscribing, so a notification already traversing the tree runs nothing
// here. Safe to call more than once.
func (r *Reader[S, T]) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.node.ClearListener()
	r.node.Unsubscribe()
}

// Node exposes the reader's subscription node so descendant consumers can
// attach under it.
func (r *Reader[S, T]) Node() *subscription.Node {
	return r.node
}

// checkForUpdates runs on every store notification. It always evaluates the
// latest selector, not the one current when the listener was installed. An
// equal value is a no-op. A selector panic is stored rather than raised,
// the next render calls the selector again and a transient failure may have
// resolved once state and props are consistent, and a re-render is
// requested so that render happens.
func (r *Reader[S, T]) checkForUpdates() {
	if r.closed {
		return
	}
	state := r.store.GetState()
	if r.hasState && equality.Identical(state, r.lastState) {
		return
	}
	r.lastState = state
	r.hasState = true
	v, err := r.evaluate(state)
	if err != nil {
		r.subErr = err
		r.onRender()
		return
	}
	if r.hasValue && r.equals(v, r.value) {
		return
	}
	r.value = v
	r.hasValue = true
	r.stale = false
	r.onRender()
}

func (r *Reader[S, T]) evaluate(state S) (v T, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = recoveredErr("selector", rec)
		}
	}()
	return r.selector(state), nil
}
