package statemachine

import "sync"

// State is a named state in the machine.
type State string

func (s State) String() string { return string(s) }

// Event is a named trigger for a state transition.
type Event string

func (e Event) String() string { return string(e) }

// Transition defines one edge of the machine: when Event fires in state
// From, the machine moves to state To.
type Transition struct {
	From  State
	Event Event
	To    State
}

// Machine is a small, thread-safe finite state machine over a fixed
// transition table. It has no terminal states: any state with an outgoing
// transition is re-enterable for the lifetime of the machine.
type Machine struct {
	initial State
	table   map[State]map[Event]State

	mu      sync.RWMutex
	current State
}

// New creates a machine in the initial state with the given transition
// table. Duplicate (from, event) pairs are a programming error and are
// rejected.
func New(initial State, transitions ...Transition) (*Machine, error) {
	m := &Machine{
		initial: initial,
		current: initial,
		table:   make(map[State]map[Event]State, len(transitions)),
	}
	for _, t := range transitions {
		if t.From == "" || t.To == "" || t.Event == "" {
			return nil, ErrInvalidTransition
		}
		events, ok := m.table[t.From]
		if !ok {
			events = make(map[Event]State)
			m.table[t.From] = events
		}
		if _, exists := events[t.Event]; exists {
			return nil, &AmbiguousTransitionError{From: t.From, Event: t.Event}
		}
		events[t.Event] = t.To
	}
	return m, nil
}

// MustNew is New but panics on an invalid transition table. Intended for
// static tables known at compile time.
func MustNew(initial State, transitions ...Transition) *Machine {
	m, err := New(initial, transitions...)
	if err != nil {
		panic(err)
	}
	return m
}

// Current returns the machine's current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Fire applies event to the current state. It returns a
// *NoTransitionError if the table defines no edge for the pair.
func (m *Machine) Fire(event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	to, ok := m.table[m.current][event]
	if !ok {
		return &NoTransitionError{From: m.current, Event: event}
	}
	m.current = to
	return nil
}

// Can reports whether firing event in the current state would succeed.
func (m *Machine) Can(event Event) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.table[m.current][event]
	return ok
}

// Reset returns the machine to its initial state.
func (m *Machine) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = m.initial
}
