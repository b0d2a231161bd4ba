package subscription

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Source is anything a root node can register with for change notifications,
// usually the state container itself.
type Source interface {
	Subscribe(listener func()) func()
}

// Node is one consumer's position in the notification tree. The tree mirrors
// the consumer hierarchy so that an ancestor always finishes its own update
// before any descendant observes the same change. A flat listener list would
// lose that ordering and make detaching a single consumer a linear scan.
//
// A node does not own its children's lifetime, children own their membership
// through the cancel function returned by their own Subscribe.
type Node struct {
	source   Source
	parent   *Node
	listener func()
	children mapset.Set[*Node]
	cancel   func()
}

// NewNode creates a detached node. A node with a parent registers with the
// parent, everything else registers with the source directly. Nothing is
// subscribed until Subscribe is called.
func NewNode(source Source, parent *Node) *Node {
	return &Node{
		source:   source,
		parent:   parent,
		children: mapset.NewSet[*Node](),
	}
}

// Subscribe registers the node upstream. Registering with a parent also
// subscribes the parent chain all the way to the source, so a deep consumer
// can attach before its ancestors have. Calling Subscribe on a node that is
// already subscribed is a no-op.
func (n *Node) Subscribe() {
	if n.cancel != nil {
		return
	}
	if n.parent != nil {
		n.cancel = n.parent.addChild(n)
		return
	}
	n.cancel = n.source.Subscribe(n.Notify)
}

// Unsubscribe detaches the node from its parent or source. Safe to call any
// number of times. The listener is left in place so the node can re-attach
// later, use ClearListener to make it inert.
func (n *Node) Unsubscribe() {
	if n.cancel == nil {
		return
	}
	n.cancel()
	n.cancel = nil
}

// IsSubscribed reports whether the node is currently registered upstream.
func (n *Node) IsSubscribed() bool {
	return n.cancel != nil
}

// SetListener installs the callback run when an upstream change reaches this
// node.
func (n *Node) SetListener(listener func()) {
	n.listener = listener
}

// ClearListener makes the node inert without detaching it. A notification
// already in flight will still traverse the node but run nothing here.
func (n *Node) ClearListener() {
	n.listener = nil
}

// Notify runs the node's own listener first, then every child that was
// attached when the notification began. The child set is snapshotted up
// front, so a child attached during this pass is not visited until the next
// notification, and a child detached during this pass is still visited.
func (n *Node) Notify() {
	children := n.children.ToSlice()
	if n.listener != nil {
		n.listener()
	}
	for _, child := range children {
		child.Notify()
	}
}

func (n *Node) addChild(child *Node) func() {
	n.Subscribe()
	n.children.Add(child)
	removed := false
	return func() {
		if removed {
			return
		}
		removed = true
		n.children.Remove(child)
	}
}
