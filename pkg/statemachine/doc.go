// Package statemachine implements a minimal, thread-safe finite state
// machine over a fixed transition table.
//
// States and events are plain named strings; the table is declared up front
// and never mutated afterwards, which keeps Fire an O(1) map lookup and the
// machine trivially safe to share between goroutines.
//
//	m := statemachine.MustNew("untouched",
//	    statemachine.Transition{From: "untouched", Event: "pass", To: "valid"},
//	    statemachine.Transition{From: "untouched", Event: "fail", To: "invalid"},
//	    statemachine.Transition{From: "valid", Event: "fail", To: "invalid"},
//	    statemachine.Transition{From: "invalid", Event: "pass", To: "valid"},
//	)
//	_ = m.Fire("fail")
//	m.Current() // "invalid"
//
// Self-transitions must be declared explicitly; firing an event with no edge
// from the current state returns a *NoTransitionError instead of silently
// staying put.
package statemachine
