package engine

import (
	"log/slog"
	"sync"

	"github.com/formkit-go/formkit/pkg/rules"
	"github.com/formkit-go/formkit/pkg/scheduler"
	"github.com/formkit-go/formkit/pkg/statemachine"
)

// Lifecycle states of an engine. An engine starts untouched and moves
// between valid and invalid on every evaluation; there is no terminal state.
const (
	StateUntouched = statemachine.State("untouched")
	StateValid     = statemachine.State("valid")
	StateInvalid   = statemachine.State("invalid")
)

const (
	eventPass = statemachine.Event("pass")
	eventFail = statemachine.Event("fail")
)

func lifecycleMachine() *statemachine.Machine {
	return statemachine.MustNew(StateUntouched,
		statemachine.Transition{From: StateUntouched, Event: eventPass, To: StateValid},
		statemachine.Transition{From: StateUntouched, Event: eventFail, To: StateInvalid},
		statemachine.Transition{From: StateValid, Event: eventPass, To: StateValid},
		statemachine.Transition{From: StateValid, Event: eventFail, To: StateInvalid},
		statemachine.Transition{From: StateInvalid, Event: eventPass, To: StateValid},
		statemachine.Transition{From: StateInvalid, Event: eventFail, To: StateInvalid},
	)
}

// Snapshot is an immutable view of the engine's state after one evaluation,
// delivered to change listeners.
type Snapshot struct {
	Input                      string
	State                      statemachine.State
	InputValid                 bool
	ValidationResults          []rules.Result
	DisplayedValidationResults []rules.Result
}

type listener struct {
	id uint64
	fn func(Snapshot)
}

// Engine owns the validation lifecycle of a single input field: it runs the
// field's rule set, holds the last results, exposes derived validity, and
// applies the debounce policy for keystroke-driven submissions.
//
// All methods are safe for concurrent use. Debounced evaluations run on a
// timer goroutine; change listeners are invoked outside the engine's lock,
// so they may call back into the engine freely.
type Engine struct {
	set rules.Set
	log *slog.Logger

	hideFailedOnEmptySubmit bool
	considerNoInputAsValid  bool

	deb *scheduler.Debouncer

	mu        sync.Mutex
	fsm       *statemachine.Machine
	results   []rules.Result
	hasRun    bool
	lastInput string
	closed    bool
	listeners []listener
	nextID    uint64
}

// New creates an engine evaluating the given rule set. A malformed set
// (duplicate rule identifiers) is logged as a warning and evaluated anyway:
// ordering between duplicates is undefined but never a crash.
func New(set rules.Set, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		set:                     set,
		log:                     o.log,
		hideFailedOnEmptySubmit: o.hideFailedOnEmptySubmit,
		considerNoInputAsValid:  o.considerNoInputAsValid,
		deb:                     scheduler.NewDebouncer(o.debounceFor),
		fsm:                     lifecycleMachine(),
	}

	if err := set.Validate(); err != nil {
		e.log.Warn("malformed rule set", "error", err)
	}
	return e
}

// Submit schedules an evaluation of input.
//
// With debounce false the evaluation runs synchronously, cancelling any
// pending debounced evaluation. With debounce true the evaluation is
// scheduled after the configured delay; every further debounced Submit
// resets the delay, and only the most recent input is evaluated when the
// timer fires (trailing edge, last write wins).
func (e *Engine) Submit(input string, debounce bool) {
	if !debounce {
		e.deb.Cancel()
		e.evaluate(input)
		return
	}
	e.deb.Call(func() { e.evaluate(input) })
}

// RunValidation evaluates input synchronously, bypassing the debounce: any
// pending debounced evaluation is cancelled, the explicit run supersedes it.
func (e *Engine) RunValidation(input string) {
	e.deb.Cancel()
	e.evaluate(input)
}

func (e *Engine) evaluate(input string) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}

	e.results = e.set.Evaluate(input)
	e.hasRun = true
	e.lastInput = input

	event := eventPass
	if len(e.results) > 0 {
		event = eventFail
	}
	if err := e.fsm.Fire(event); err != nil {
		e.log.Error("lifecycle transition failed", "error", err)
	}

	snap := e.snapshotLocked()
	notify := make([]func(Snapshot), len(e.listeners))
	for i, l := range e.listeners {
		notify[i] = l.fn
	}
	e.mu.Unlock()

	e.log.Debug("evaluated input",
		"state", snap.State,
		"failures", len(snap.ValidationResults),
	)
	for _, fn := range notify {
		fn(snap)
	}
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		Input:                      e.lastInput,
		State:                      e.fsm.Current(),
		InputValid:                 e.inputValidLocked(),
		ValidationResults:          append([]rules.Result(nil), e.results...),
		DisplayedValidationResults: e.displayedLocked(),
	}
}

func (e *Engine) inputValidLocked() bool {
	return len(e.results) == 0 && (e.hasRun || e.considerNoInputAsValid)
}

func (e *Engine) displayedLocked() []rules.Result {
	if e.hideFailedOnEmptySubmit && e.lastInput == "" {
		return nil
	}
	return append([]rules.Result(nil), e.results...)
}

// InputValid reports whether the input is currently considered valid: the
// last evaluation produced no failures and the engine has run at least once,
// unless WithConsiderNoInputAsValid treats the untouched state as valid.
func (e *Engine) InputValid() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inputValidLocked()
}

// ValidationResults returns the failures of the last evaluation in rule-set
// order. The returned slice is a copy.
func (e *Engine) ValidationResults() []rules.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]rules.Result(nil), e.results...)
}

// DisplayedValidationResults returns the failures the presentation layer
// should show. Equals ValidationResults, except that it is empty when the
// last submitted input was empty and WithHideFailedValidationOnEmptySubmit
// is set.
func (e *Engine) DisplayedValidationResults() []rules.Result {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.displayedLocked()
}

// IsDisplayingValidationErrors reports whether any failure should currently
// be rendered.
func (e *Engine) IsDisplayingValidationErrors() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.displayedLocked()) > 0
}

// State returns the engine's lifecycle state.
func (e *Engine) State() statemachine.State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.fsm.Current()
}

// Snapshot returns an immutable view of the current state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// OnChange registers fn to be called with a snapshot after every
// evaluation, in registration order. It returns a removal function; removal
// is idempotent.
func (e *Engine) OnChange(fn func(Snapshot)) func() {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.listeners = append(e.listeners, listener{id: id, fn: fn})
	e.mu.Unlock()

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		for i, l := range e.listeners {
			if l.id == id {
				e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
				return
			}
		}
	}
}

// Close tears the engine down: any pending debounced evaluation is
// cancelled so no callback fires after teardown, and further submissions
// become no-ops. Close is idempotent. Read accessors keep returning the
// last evaluated state.
func (e *Engine) Close() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.listeners = nil
	e.mu.Unlock()

	e.deb.Cancel()
}
