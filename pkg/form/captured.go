package form

import (
	"github.com/formkit-go/formkit/pkg/engine"
	"github.com/formkit-go/formkit/pkg/rules"
)

// CapturedState binds one validation engine to a snapshot of its field's
// input and an optional "move focus here" capability. It never owns the
// engine: captures are transient handles, recreated whenever the owning
// field changes and held by a Context only between refreshes.
type CapturedState struct {
	eng       *engine.Engine
	input     string
	moveFocus func()
}

// NewCapturedState creates a capture of eng with the given input snapshot.
// moveFocus may be nil, in which case MoveFocus is a no-op.
func NewCapturedState(eng *engine.Engine, input string, moveFocus func()) CapturedState {
	return CapturedState{eng: eng, input: input, moveFocus: moveFocus}
}

// Input returns the input snapshot taken at capture time.
func (c CapturedState) Input() string { return c.input }

// RunValidation evaluates the captured snapshot, not a live read of the
// field. An aggregate pass over many captures therefore validates one
// consistent moment's values even if fields keep mutating concurrently.
func (c CapturedState) RunValidation() {
	if c.eng != nil {
		c.eng.RunValidation(c.input)
	}
}

// InputValid reports the engine's current validity.
func (c CapturedState) InputValid() bool {
	return c.eng != nil && c.eng.InputValid()
}

// ValidationResults returns the engine's current failures.
func (c CapturedState) ValidationResults() []rules.Result {
	if c.eng == nil {
		return nil
	}
	return c.eng.ValidationResults()
}

// DisplayedValidationResults returns the failures the engine currently
// wants rendered.
func (c CapturedState) DisplayedValidationResults() []rules.Result {
	if c.eng == nil {
		return nil
	}
	return c.eng.DisplayedValidationResults()
}

// MoveFocus invokes the focus capability if present.
func (c CapturedState) MoveFocus() {
	if c.moveFocus != nil {
		c.moveFocus()
	}
}

// Equal reports whether two captures reference the same engine and carry
// the same input snapshot. Two captures of one engine taken around an edit
// are not equal.
func (c CapturedState) Equal(other CapturedState) bool {
	return c.eng == other.eng && c.input == other.input
}
