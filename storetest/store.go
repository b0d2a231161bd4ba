package storetest

import "github.com/delaneyj/storeparty/store"

// Store is an in-memory state container for tests and benchmarks. Everything
// runs on the caller's goroutine, matching the single threaded contract of
// the binding layer, so there is no locking.
type Store[S any] struct {
	state     S
	apply     func(S, store.Action) S
	listeners []*func()
}

// New builds a store seeded with initial. apply may be nil when the test only
// drives changes through SetState.
func New[S any](initial S, apply func(S, store.Action) S) *Store[S] {
	return &Store[S]{state: initial, apply: apply}
}

func (s *Store[S]) GetState() S {
	return s.state
}

// Dispatch applies the action and notifies every listener, even when the
// state comes out unchanged. Cutting off on equality is the consumers' job,
// not the store's.
func (s *Store[S]) Dispatch(action store.Action) S {
	if s.apply != nil {
		s.state = s.apply(s.state, action)
	}
	s.notify()
	return s.state
}

// SetState swaps the state directly, bypassing apply.
func (s *Store[S]) SetState(next S) {
	s.state = next
	s.notify()
}

// Subscribe registers listener and returns a cancel that is safe to call more
// than once.
func (s *Store[S]) Subscribe(listener func()) func() {
	entry := &listener
	s.listeners = append(s.listeners, entry)
	return func() {
		for i, l := range s.listeners {
			if l == entry {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Subscribers reports how many listeners are currently registered.
func (s *Store[S]) Subscribers() int {
	return len(s.listeners)
}

func (s *Store[S]) notify() {
	// listeners may subscribe or unsubscribe while being notified
	snapshot := make([]*func(), len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		(*l)()
	}
}
