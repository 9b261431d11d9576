package statemachine

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition indicates a transition with an empty state or event name.
var ErrInvalidTransition = errors.New("statemachine: transition states and event must not be empty")

// NoTransitionError indicates the table defines no edge for the given
// state/event pair.
type NoTransitionError struct {
	From  State
	Event Event
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("statemachine: no transition from state %q for event %q", e.From, e.Event)
}

// AmbiguousTransitionError indicates two table entries share the same
// state/event pair.
type AmbiguousTransitionError struct {
	From  State
	Event Event
}

func (e *AmbiguousTransitionError) Error() string {
	return fmt.Sprintf("statemachine: duplicate transition from state %q for event %q", e.From, e.Event)
}

// IsNoTransitionError reports whether err wraps a *NoTransitionError.
func IsNoTransitionError(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}
