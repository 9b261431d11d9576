package form

import (
	"sync"

	"github.com/google/uuid"
)

// FocusController tracks which field currently holds focus, by field
// identity. It is the narrow seam towards the host UI's focus handling: the
// presentation layer observes Current and moves its real cursor accordingly.
type FocusController struct {
	mu      sync.Mutex
	current uuid.UUID
	focused bool
}

// NewFocusController creates a controller with no field focused.
func NewFocusController() *FocusController {
	return &FocusController{}
}

// Focus marks the field with the given identity as focused.
func (fc *FocusController) Focus(id uuid.UUID) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.current = id
	fc.focused = true
}

// Current returns the focused field's identity, if any field is focused.
func (fc *FocusController) Current() (uuid.UUID, bool) {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.current, fc.focused
}

// Blur clears the focus.
func (fc *FocusController) Blur() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.current = uuid.UUID{}
	fc.focused = false
}
