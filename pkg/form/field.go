package form

import (
	"sync"

	"github.com/google/uuid"

	"github.com/formkit-go/formkit/pkg/engine"
)

// FieldOption configures field creation.
type FieldOption func(*Field)

// WithFocusController attaches a focus controller; captures of the field
// then carry a working MoveFocus capability.
func WithFocusController(fc *FocusController) FieldOption {
	return func(f *Field) {
		f.focus = fc
	}
}

// Field couples one validation engine with the live input value of a text
// field and an explicit declaration-order key. It is the unit a Context
// aggregates.
//
// The order key decides focus tie-breaking in an aggregate validation pass
// (lowest key wins). It is assigned at construction, mirroring the field's
// position in the form, and deliberately independent of registration time.
type Field struct {
	id    uuid.UUID
	order int
	eng   *engine.Engine
	focus *FocusController

	mu        sync.Mutex
	value     string
	onCapture func()
}

// NewField creates a field with the given declaration-order key, owning eng.
func NewField(order int, eng *engine.Engine, opts ...FieldOption) *Field {
	f := &Field{
		id:    uuid.New(),
		order: order,
		eng:   eng,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ID returns the field's stable identity.
func (f *Field) ID() uuid.UUID { return f.id }

// Order returns the field's declaration-order key.
func (f *Field) Order() int { return f.order }

// Engine returns the field's validation engine.
func (f *Field) Engine() *engine.Engine { return f.eng }

// Value returns the current input value.
func (f *Field) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// SetValue stores the new input value, submits it to the engine with
// debounce, and republishes the field's capture to a registered context.
// This is the keystroke path.
func (f *Field) SetValue(value string) {
	f.mu.Lock()
	f.value = value
	republish := f.onCapture
	f.mu.Unlock()

	f.eng.Submit(value, true)
	if republish != nil {
		republish()
	}
}

// Validate runs the engine immediately against the current value,
// superseding any pending debounced evaluation.
func (f *Field) Validate() {
	f.eng.RunValidation(f.Value())
}

// Capture takes a snapshot handle of the field for aggregation.
func (f *Field) Capture() CapturedState {
	f.mu.Lock()
	value := f.value
	f.mu.Unlock()

	var moveFocus func()
	if f.focus != nil {
		moveFocus = func() { f.focus.Focus(f.id) }
	}
	return NewCapturedState(f.eng, value, moveFocus)
}

// Close tears the field down, cancelling any pending evaluation.
func (f *Field) Close() {
	f.mu.Lock()
	f.onCapture = nil
	f.mu.Unlock()
	f.eng.Close()
}

func (f *Field) setOnCapture(fn func()) {
	f.mu.Lock()
	f.onCapture = fn
	f.mu.Unlock()
}
