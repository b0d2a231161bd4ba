package connect

import (
	"github.com/delaneyj/storeparty/equality"
	"github.com/delaneyj/storeparty/store"
)

// Pipeline combines the three prop sources of one consumer, state props,
// dispatch props and own props, into a single merged Props value. In pure
// mode (the default) it keeps the previous inputs and outputs and only
// recomputes the parts a given change actually invalidated. Impure mode
// recomputes everything on every call and always counts as changed.
//
// The staged invalidation sits between two wasteful extremes: recomputing
// all three sources on every change, and building the full merged object
// before discovering it was unnecessary.
type Pipeline[S any] struct {
	dispatch    store.Dispatch[S]
	mapState    *adapter[S]
	mapDispatch *adapter[store.Dispatch[S]]
	merge       MergeFunc
	opts        options

	state           S
	ownProps        Props
	stateProps      Props
	dispatchProps   Props
	mergedProps     Props
	hasComputedOnce bool
	changed         bool

	lastMerged Props
	hasMerged  bool
}

// NewPipeline builds a pipeline around the two mappers and the merge
// function. mapState and mapDispatch accept any of the mapper shapes adapter
// recognizes, nil included. A nil merge uses DefaultMerge.
func NewPipeline[S any](dispatch store.Dispatch[S], mapState, mapDispatch any, merge MergeFunc, opts ...Option) (*Pipeline[S], error) {
	o := newOptions(opts...)
	ms, err := newAdapter[S](mapState, "state mapping", o.name, o.reporter)
	if err != nil {
		return nil, err
	}
	md, err := newAdapter[store.Dispatch[S]](mapDispatch, "dispatch mapping", o.name, o.reporter)
	if err != nil {
		return nil, err
	}
	if merge == nil {
		merge = DefaultMerge
	}
	return &Pipeline[S]{
		dispatch:    dispatch,
		mapState:    ms,
		mapDispatch: md,
		merge:       merge,
		opts:        o,
	}, nil
}

// Compute returns the merged props for (state, ownProps). Mapper and merge
// panics are recovered into errors, a failed Compute leaves the cache
// untouched apart from the inputs already recorded.
func (p *Pipeline[S]) Compute(state S, ownProps Props) (merged Props, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			merged = nil
			err = recoveredErr("props computation", rec)
		}
	}()
	if !p.opts.pure {
		return p.computeImpure(state, ownProps)
	}
	return p.computePure(state, ownProps)
}

// Changed reports whether the last Compute produced a different merged Props
// than the one before it. The comparison is identity on the memoized output:
// a recompute that came out equal per AreMergedPropsEqual returns the cached
// map itself and therefore counts as unchanged.
func (p *Pipeline[S]) Changed() bool {
	return p.changed
}

// Pure reports which mode the pipeline was built in.
func (p *Pipeline[S]) Pure() bool {
	return p.opts.pure
}

// observesState reports whether the state mapper can ever produce different
// props for different states. A constant (nil) mapper cannot, so a consumer
// built on it has nothing to subscribe for.
func (p *Pipeline[S]) observesState() bool {
	return !p.mapState.constant
}

func (p *Pipeline[S]) computeImpure(state S, ownProps Props) (Props, error) {
	stateProps, err := p.mapState.props(state, ownProps)
	if err != nil {
		return nil, err
	}
	dispatchProps, err := p.mapDispatch.props(p.dispatch, ownProps)
	if err != nil {
		return nil, err
	}
	p.changed = true
	return p.checkedMerge(stateProps, dispatchProps, ownProps), nil
}

func (p *Pipeline[S]) computePure(state S, ownProps Props) (Props, error) {
	if !p.hasComputedOnce {
		return p.computeFirst(state, ownProps)
	}
	ownChanged := !p.opts.areOwnPropsEqual(ownProps, p.ownProps)
	stateChanged := !p.opts.areStatesEqual(state, p.state)

	prev := p.mergedProps
	var err error
	switch {
	case ownChanged && stateChanged:
		err = p.newPropsAndState(state, ownProps)
	case ownChanged:
		err = p.newProps(state, ownProps)
	case stateChanged:
		err = p.newState(state, ownProps)
	}
	if err != nil {
		return nil, err
	}
	// inputs are recorded only once the stages succeeded: a failed compute
	// must keep looking changed so the retry recomputes instead of handing
	// back the stale merge
	p.state = state
	p.ownProps = ownProps
	p.changed = !equality.Identical(prev, p.mergedProps)
	return p.mergedProps, nil
}

// computeFirst runs all three sources and the merge unconditionally. There
// is nothing cached yet to invalidate against.
func (p *Pipeline[S]) computeFirst(state S, ownProps Props) (Props, error) {
	stateProps, err := p.mapState.props(state, ownProps)
	if err != nil {
		return nil, err
	}
	dispatchProps, err := p.mapDispatch.props(p.dispatch, ownProps)
	if err != nil {
		return nil, err
	}
	p.state = state
	p.ownProps = ownProps
	p.stateProps = stateProps
	p.dispatchProps = dispatchProps
	p.mergedProps = p.memoMerge(stateProps, dispatchProps, ownProps)
	p.hasComputedOnce = true
	p.changed = true
	return p.mergedProps, nil
}

// newPropsAndState: state props always recompute, dispatch props only when
// their mapper can see own props, and the merge runs again.
func (p *Pipeline[S]) newPropsAndState(state S, ownProps Props) error {
	stateProps, err := p.mapState.props(state, ownProps)
	if err != nil {
		return err
	}
	p.stateProps = stateProps
	if p.mapDispatch.depends {
		dispatchProps, err := p.mapDispatch.props(p.dispatch, ownProps)
		if err != nil {
			return err
		}
		p.dispatchProps = dispatchProps
	}
	p.mergedProps = p.memoMerge(p.stateProps, p.dispatchProps, ownProps)
	return nil
}

// newProps: only own props moved, so each mapper recomputes only when it
// depends on them. The merge always sees the new own props.
func (p *Pipeline[S]) newProps(state S, ownProps Props) error {
	if p.mapState.depends {
		stateProps, err := p.mapState.props(state, ownProps)
		if err != nil {
			return err
		}
		p.stateProps = stateProps
	}
	if p.mapDispatch.depends {
		dispatchProps, err := p.mapDispatch.props(p.dispatch, ownProps)
		if err != nil {
			return err
		}
		p.dispatchProps = dispatchProps
	}
	p.mergedProps = p.memoMerge(p.stateProps, p.dispatchProps, ownProps)
	return nil
}

// newState: own props and dispatch props are untouched, so unless the fresh
// state props differ per AreStatePropsEqual the merge cannot change and is
// skipped outright.
func (p *Pipeline[S]) newState(state S, ownProps Props) error {
	stateProps, err := p.mapState.props(state, ownProps)
	if err != nil {
		return err
	}
	statePropsChanged := !p.opts.areStatePropsEqual(stateProps, p.stateProps)
	p.stateProps = stateProps
	if statePropsChanged {
		p.mergedProps = p.memoMerge(p.stateProps, p.dispatchProps, ownProps)
	}
	return nil
}

// memoMerge wraps the merge function with its own memo: a fresh result that
// is AreMergedPropsEqual to the previous one hands back the previous map
// itself, collapsing "recomputed but unchanged" into "unchanged" for every
// identity check downstream.
func (p *Pipeline[S]) memoMerge(stateProps, dispatchProps, ownProps Props) Props {
	next := p.checkedMerge(stateProps, dispatchProps, ownProps)
	if p.hasMerged && p.opts.areMergedPropsEqual(next, p.lastMerged) {
		return p.lastMerged
	}
	p.lastMerged = next
	p.hasMerged = true
	return next
}

// checkedMerge runs the merge and shape-verifies the result. Both modes go
// through here, only pure mode adds the memo on top.
func (p *Pipeline[S]) checkedMerge(stateProps, dispatchProps, ownProps Props) Props {
	next := p.merge(stateProps, dispatchProps, ownProps)
	if next == nil {
		p.warnMergeShape()
		next = Props{}
	}
	return next
}

func (p *Pipeline[S]) warnMergeShape() {
	if !p.opts.reporter.Enabled() {
		return
	}
	msg := "merge must return a plain key-value map"
	if p.opts.name != "" {
		msg = p.opts.name + ": " + msg
	}
	p.opts.reporter.Warn(msg, "got", "nil")
}
