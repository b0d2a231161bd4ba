package connect

import (
	"errors"
	"fmt"
)

var (
	// ErrUnusableMapper means a mapper was neither nil, a recognized function
	// shape, nor a function whose first parameter accepts the mapping input.
	ErrUnusableMapper = errors.New("connect: mapper is not a usable function")

	// ErrClosed means the consumer was already closed.
	ErrClosed = errors.New("connect: consumer is closed")
)

// recoveredErr converts a recovered panic value into an error, keeping the
// original error chain when there is one.
func recoveredErr(stage string, rec any) error {
	if err, ok := rec.(error); ok {
		return fmt.Errorf("connect: %s panicked: %w", stage, err)
	}
	return fmt.Errorf("connect: %s panicked: %v", stage, rec)
}
