package stopwatch

import (
	"errors"
	"fmt"
)

// ErrInvalidState is matched by every InvalidStateError.
var ErrInvalidState = errors.New("invalid stopwatch state")

// InvalidStateError reports an operation called in a state that forbids it.
type InvalidStateError struct {
	Op    string
	State State
}

func (e *InvalidStateError) Error() string {
	switch e.Op {
	case "start":
		return "start while running"
	case "pause":
		return "pause while not running"
	case "reset":
		return "reset while running"
	}
	return fmt.Sprintf("%s while %s", e.Op, e.State)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}
