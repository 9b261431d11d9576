package statemachine_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formkit-go/formkit/pkg/statemachine"
)

const (
	stateUntouched = statemachine.State("untouched")
	stateValid     = statemachine.State("valid")
	stateInvalid   = statemachine.State("invalid")

	eventPass = statemachine.Event("pass")
	eventFail = statemachine.Event("fail")
)

func newLifecycleMachine(t *testing.T) *statemachine.Machine {
	t.Helper()
	m, err := statemachine.New(stateUntouched,
		statemachine.Transition{From: stateUntouched, Event: eventPass, To: stateValid},
		statemachine.Transition{From: stateUntouched, Event: eventFail, To: stateInvalid},
		statemachine.Transition{From: stateValid, Event: eventPass, To: stateValid},
		statemachine.Transition{From: stateValid, Event: eventFail, To: stateInvalid},
		statemachine.Transition{From: stateInvalid, Event: eventPass, To: stateValid},
		statemachine.Transition{From: stateInvalid, Event: eventFail, To: stateInvalid},
	)
	require.NoError(t, err)
	return m
}

func TestMachineFire(t *testing.T) {
	t.Run("starts in initial state", func(t *testing.T) {
		m := newLifecycleMachine(t)
		assert.Equal(t, stateUntouched, m.Current())
	})

	t.Run("walks declared transitions", func(t *testing.T) {
		m := newLifecycleMachine(t)

		require.NoError(t, m.Fire(eventFail))
		assert.Equal(t, stateInvalid, m.Current())

		require.NoError(t, m.Fire(eventPass))
		assert.Equal(t, stateValid, m.Current())

		require.NoError(t, m.Fire(eventPass))
		assert.Equal(t, stateValid, m.Current(), "self-transition keeps state")
	})

	t.Run("returns typed error for missing edge", func(t *testing.T) {
		m := statemachine.MustNew(stateUntouched,
			statemachine.Transition{From: stateUntouched, Event: eventPass, To: stateValid},
		)
		require.NoError(t, m.Fire(eventPass))

		err := m.Fire(eventPass)
		require.Error(t, err)
		assert.True(t, statemachine.IsNoTransitionError(err))
		assert.Equal(t, stateValid, m.Current(), "failed fire must not move the machine")
	})
}

func TestMachineCan(t *testing.T) {
	m := statemachine.MustNew(stateUntouched,
		statemachine.Transition{From: stateUntouched, Event: eventFail, To: stateInvalid},
	)
	assert.True(t, m.Can(eventFail))
	assert.False(t, m.Can(eventPass))
}

func TestMachineReset(t *testing.T) {
	m := newLifecycleMachine(t)
	require.NoError(t, m.Fire(eventFail))
	m.Reset()
	assert.Equal(t, stateUntouched, m.Current())
}

func TestNewValidation(t *testing.T) {
	t.Run("rejects empty names", func(t *testing.T) {
		_, err := statemachine.New(stateUntouched, statemachine.Transition{From: "", Event: eventPass, To: stateValid})
		assert.ErrorIs(t, err, statemachine.ErrInvalidTransition)
	})

	t.Run("rejects duplicate edges", func(t *testing.T) {
		_, err := statemachine.New(stateUntouched,
			statemachine.Transition{From: stateUntouched, Event: eventPass, To: stateValid},
			statemachine.Transition{From: stateUntouched, Event: eventPass, To: stateInvalid},
		)
		require.Error(t, err)
		var ambiguous *statemachine.AmbiguousTransitionError
		assert.ErrorAs(t, err, &ambiguous)
	})

	t.Run("MustNew panics on invalid table", func(t *testing.T) {
		assert.Panics(t, func() {
			statemachine.MustNew(stateUntouched, statemachine.Transition{})
		})
	})
}

func TestMachineConcurrency(t *testing.T) {
	m := newLifecycleMachine(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = m.Fire(eventPass)
		}()
		go func() {
			defer wg.Done()
			_ = m.Current()
		}()
	}
	wg.Wait()

	assert.Equal(t, stateValid, m.Current())
}
