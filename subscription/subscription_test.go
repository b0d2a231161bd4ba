package subscription_test

import (
	"testing"

	"github.com/delaneyj/storeparty/subscription"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimal source that counts registrations and lets the test fire changes
type fakeSource struct {
	listeners  []func()
	subscribes int
}

func (s *fakeSource) Subscribe(listener func()) func() {
	s.subscribes++
	s.listeners = append(s.listeners, listener)
	i := len(s.listeners) - 1
	return func() {
		s.listeners[i] = nil
	}
}

func (s *fakeSource) fire() {
	for _, l := range s.listeners {
		if l != nil {
			l()
		}
	}
}

// a parent's listener runs before any of its children see the same change
func TestNotifyParentBeforeChildren(t *testing.T) {
	//   source
	//     |
	//   parent
	//   /    \
	// childA childB
	src := &fakeSource{}
	parent := subscription.NewNode(src, nil)
	childA := subscription.NewNode(nil, parent)
	childB := subscription.NewNode(nil, parent)

	var order []string
	parent.SetListener(func() { order = append(order, "parent") })
	childA.SetListener(func() { order = append(order, "child") })
	childB.SetListener(func() { order = append(order, "child") })

	parent.Subscribe()
	childA.Subscribe()
	childB.Subscribe()

	src.fire()
	require.Len(t, order, 3)
	assert.Equal(t, "parent", order[0])
	assert.Equal(t, "child", order[1])
	assert.Equal(t, "child", order[2])
}

// depth first: a grandchild is reached before the next subtree starts
func TestNotifyDepthFirst(t *testing.T) {
	//   source
	//     |
	//   parent
	//     |
	//   child
	//     |
	// grandchild
	src := &fakeSource{}
	parent := subscription.NewNode(src, nil)
	child := subscription.NewNode(nil, parent)
	grandchild := subscription.NewNode(nil, child)

	var order []string
	parent.SetListener(func() { order = append(order, "parent") })
	child.SetListener(func() { order = append(order, "child") })
	grandchild.SetListener(func() { order = append(order, "grandchild") })

	parent.Subscribe()
	child.Subscribe()
	grandchild.Subscribe()

	src.fire()
	assert.Equal(t, []string{"parent", "child", "grandchild"}, order)
}

// subscribing twice registers upstream once
func TestSubscribeIdempotent(t *testing.T) {
	src := &fakeSource{}
	node := subscription.NewNode(src, nil)
	node.SetListener(func() {})

	node.Subscribe()
	node.Subscribe()
	assert.Equal(t, 1, src.subscribes)
	assert.True(t, node.IsSubscribed())
}

// subscribing a deep node pulls the whole ancestor chain in
func TestSubscribeChainsUpward(t *testing.T) {
	src := &fakeSource{}
	parent := subscription.NewNode(src, nil)
	child := subscription.NewNode(nil, parent)

	assert.False(t, parent.IsSubscribed())
	child.Subscribe()
	assert.True(t, parent.IsSubscribed())
	assert.Equal(t, 1, src.subscribes)
}

// unsubscribe stops notifications and is safe to repeat
func TestUnsubscribe(t *testing.T) {
	src := &fakeSource{}
	node := subscription.NewNode(src, nil)
	calls := 0
	node.SetListener(func() { calls++ })

	node.Subscribe()
	src.fire()
	assert.Equal(t, 1, calls)

	node.Unsubscribe()
	node.Unsubscribe()
	assert.False(t, node.IsSubscribed())
	src.fire()
	assert.Equal(t, 1, calls)
}

// a detached child stops receiving notifications while its siblings keep them
func TestUnsubscribeChildKeepsSiblings(t *testing.T) {
	src := &fakeSource{}
	parent := subscription.NewNode(src, nil)
	childA := subscription.NewNode(nil, parent)
	childB := subscription.NewNode(nil, parent)

	aCalls, bCalls := 0, 0
	childA.SetListener(func() { aCalls++ })
	childB.SetListener(func() { bCalls++ })
	childA.Subscribe()
	childB.Subscribe()

	src.fire()
	assert.Equal(t, 1, aCalls)
	assert.Equal(t, 1, bCalls)

	childA.ClearListener()
	childA.Unsubscribe()
	src.fire()
	assert.Equal(t, 1, aCalls)
	assert.Equal(t, 2, bCalls)
}

// a child attached while a notification runs is not visited until the next one
func TestChildAddedDuringNotifyWaits(t *testing.T) {
	src := &fakeSource{}
	parent := subscription.NewNode(src, nil)

	lateCalls := 0
	late := subscription.NewNode(nil, parent)
	late.SetListener(func() { lateCalls++ })

	parent.SetListener(func() {
		if !late.IsSubscribed() {
			late.Subscribe()
		}
	})
	parent.Subscribe()

	src.fire()
	assert.Equal(t, 0, lateCalls)

	src.fire()
	assert.Equal(t, 1, lateCalls)
}

// a child detached mid pass is still part of the snapshot that pass
func TestChildRemovedDuringNotifyStillVisited(t *testing.T) {
	src := &fakeSource{}
	parent := subscription.NewNode(src, nil)
	child := subscription.NewNode(nil, parent)

	childCalls := 0
	child.SetListener(func() { childCalls++ })
	parent.SetListener(func() {
		child.Unsubscribe()
	})

	parent.Subscribe()
	child.Subscribe()

	src.fire()
	assert.Equal(t, 1, childCalls)

	src.fire()
	assert.Equal(t, 1, childCalls)
}

// clearing the listener makes an in flight visit a no-op
func TestClearListenerMakesNodeInert(t *testing.T) {
	src := &fakeSource{}
	parent := subscription.NewNode(src, nil)
	child := subscription.NewNode(nil, parent)

	childCalls := 0
	child.SetListener(func() { childCalls++ })
	parent.SetListener(func() {
		child.ClearListener()
		child.Unsubscribe()
	})

	parent.Subscribe()
	child.Subscribe()

	src.fire()
	assert.Equal(t, 0, childCalls)
}

// nodes without listeners still pass notifications through to descendants
func TestListenerlessNodePassesThrough(t *testing.T) {
	src := &fakeSource{}
	parent := subscription.NewNode(src, nil)
	child := subscription.NewNode(nil, parent)

	calls := 0
	child.SetListener(func() { calls++ })
	child.Subscribe()

	src.fire()
	assert.Equal(t, 1, calls)
}
