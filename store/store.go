package store

// Action is whatever the state container understands. The binding layer never
// inspects actions, it only forwards them.
type Action = any

// Dispatch sends an action to the state container and returns the state that
// resulted from applying it.
type Dispatch[S any] func(action Action) S

// Store is the slice of a state container the binding layer needs: read the
// current state, dispatch actions, and get told when something was dispatched.
// Mutating the store is the only thing that triggers change propagation, and
// the binding layer never mutates it.
type Store[S any] interface {
	GetState() S
	Dispatch(action Action) S
	Subscribe(listener func()) func()
}
