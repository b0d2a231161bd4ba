package connect_test

import (
	"testing"

	"github.com/delaneyj/storeparty/connect"
	"github.com/delaneyj/storeparty/store"
	"github.com/delaneyj/storeparty/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapCount(s counterState) connect.Props {
	return connect.Props{"count": s.Count}
}

// render combines all three sources, commit wires the store subscription
func TestBindingRenderCommitFlow(t *testing.T) {
	st := newCounterStore()
	spy := storetest.NewRenderSpy()
	mapDispatch := func(d store.Dispatch[counterState]) connect.Props {
		return connect.Props{"reset": func() { d("reset") }}
	}
	b, err := connect.NewBinding[counterState](st, nil, mapCount, mapDispatch, nil,
		connect.OnRender(spy.Render))
	require.NoError(t, err)
	defer b.Close()

	merged, err := b.Render(connect.Props{"id": 7})
	require.NoError(t, err)
	assert.Equal(t, 0, merged["count"])
	assert.Equal(t, 7, merged["id"])
	assert.NotNil(t, merged["reset"])
	b.Commit()

	st.SetState(counterState{Count: 2})
	assert.Equal(t, 1, spy.Renders())

	merged, err = b.Render(connect.Props{"id": 7})
	require.NoError(t, err)
	assert.Equal(t, 2, merged["count"])
	b.Commit()
}

// a binding without a state mapper never subscribes to the store
func TestBindingNilStateMapperNeverSubscribes(t *testing.T) {
	st := newCounterStore()
	spy := storetest.NewRenderSpy()
	mapDispatch := func(d store.Dispatch[counterState]) connect.Props {
		return connect.Props{"send": func() { d(nil) }}
	}
	b, err := connect.NewBinding[counterState](st, nil, nil, mapDispatch, nil,
		connect.OnRender(spy.Render))
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Render(nil)
	require.NoError(t, err)
	b.Commit()

	assert.Equal(t, 0, st.Subscribers())
	st.SetState(counterState{Count: 5})
	assert.Equal(t, 0, spy.Renders())
}

// pure mode: a store change whose mapped props come out equal requests nothing
func TestBindingPureSkipsUnchangedOutput(t *testing.T) {
	st := newCounterStore()
	spy := storetest.NewRenderSpy()
	b, err := connect.NewBinding[counterState](st, nil, mapCount, nil, nil,
		connect.OnRender(spy.Render))
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Render(nil)
	require.NoError(t, err)
	b.Commit()

	st.SetState(counterState{Count: 0, Other: 3})
	assert.Equal(t, 0, spy.Renders(), "count did not change, neither did the merged props")

	st.SetState(counterState{Count: 1, Other: 3})
	assert.Equal(t, 1, spy.Renders())
}

// impure mode: every store change requests a render
func TestBindingImpureAlwaysRenders(t *testing.T) {
	st := newCounterStore()
	spy := storetest.NewRenderSpy()
	b, err := connect.NewBinding[counterState](st, nil, mapCount, nil, nil,
		connect.OnRender(spy.Render), connect.Impure())
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Render(nil)
	require.NoError(t, err)
	b.Commit()

	st.SetState(counterState{Count: 0, Other: 1})
	st.SetState(counterState{Count: 0, Other: 2})
	assert.Equal(t, 2, spy.Renders())
}

// subscription checks reuse the own props of the last render
func TestBindingChecksUseLatestOwnProps(t *testing.T) {
	st := newCounterStore()
	spy := storetest.NewRenderSpy()
	mapState := func(s counterState, own connect.Props) connect.Props {
		return connect.Props{"total": s.Count + own["base"].(int)}
	}
	b, err := connect.NewBinding[counterState](st, nil, mapState, nil, nil,
		connect.OnRender(spy.Render))
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Render(connect.Props{"base": 100})
	require.NoError(t, err)
	b.Commit()

	st.SetState(counterState{Count: 1})
	assert.Equal(t, 1, spy.Renders())

	merged, err := b.Render(connect.Props{"base": 100})
	require.NoError(t, err)
	assert.Equal(t, 101, merged["total"])
}

// a mapper failure during a check is stored and correlated with the next
// render's failure
func TestBindingErrorCorrelation(t *testing.T) {
	st := newCounterStore()
	spy := storetest.NewRenderSpy()
	mapState := func(s counterState) connect.Props {
		if s.Count < 0 {
			panic("count must not be negative")
		}
		return connect.Props{"count": s.Count}
	}
	b, err := connect.NewBinding[counterState](st, nil, mapState, nil, nil,
		connect.OnRender(spy.Render))
	require.NoError(t, err)
	defer b.Close()

	_, err = b.Render(nil)
	require.NoError(t, err)
	b.Commit()

	st.SetState(counterState{Count: -1})
	assert.Equal(t, 1, spy.Renders())

	_, err = b.Render(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count must not be negative")
	assert.Contains(t, err.Error(), "subscription check had already failed")
}

// after Close a store mutation does not reach the binding
func TestBindingCloseDetaches(t *testing.T) {
	st := newCounterStore()
	spy := storetest.NewRenderSpy()
	b, err := connect.NewBinding[counterState](st, nil, mapCount, nil, nil,
		connect.OnRender(spy.Render))
	require.NoError(t, err)

	_, err = b.Render(nil)
	require.NoError(t, err)
	b.Commit()
	assert.Equal(t, 1, st.Subscribers())

	b.Close()
	b.Close() // safe to call again
	assert.Equal(t, 0, st.Subscribers())

	st.SetState(counterState{Count: 3})
	assert.Equal(t, 0, spy.Renders())

	_, err = b.Render(nil)
	assert.ErrorIs(t, err, connect.ErrClosed)
}

// bindings nest under a reader's node and render strictly after their parent
func TestBindingUnderParentNode(t *testing.T) {
	//    store
	//      |
	//    parent (reader)
	//      |
	//    child (binding)
	st := newCounterStore()
	var order []string

	var parent *connect.Reader[counterState, int]
	parent = connect.NewReader[counterState, int](st, nil, func(s counterState) int {
		return s.Count
	}, connect.OnRender(func() {
		order = append(order, "parent")
		_, err := parent.Read()
		require.NoError(t, err)
		parent.Commit()
	}))
	defer parent.Close()
	_, err := parent.Read()
	require.NoError(t, err)
	parent.Commit()

	child, err := connect.NewBinding[counterState](st, parent.Node(), mapCount, nil, nil,
		connect.OnRender(func() {
			order = append(order, "child")
		}))
	require.NoError(t, err)
	defer child.Close()
	_, err = child.Render(nil)
	require.NoError(t, err)
	child.Commit()

	st.SetState(counterState{Count: 1})
	require.Equal(t, []string{"parent", "child"}, order)
}
