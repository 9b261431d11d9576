package form

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/formkit-go/formkit/pkg/rules"
)

// ContextOption configures context creation.
type ContextOption func(*Context)

// WithLogger sets the logger used for aggregation diagnostics.
func WithLogger(log *slog.Logger) ContextOption {
	return func(c *Context) {
		if log != nil {
			c.log = log
		}
	}
}

// UnregisterFunc removes a field from its context. Idempotent.
type UnregisterFunc func()

// Context aggregates the captured states of registered fields: it answers
// "is the whole form valid", concatenates every field's failures in
// declaration order, and implements the validate-everything-then-focus-the-
// first-failure submit pass.
//
// The capture list is copy-on-change: it is rebuilt and replaced wholesale
// whenever a field registers, unregisters, or republishes its capture, so a
// consumer holding a previous snapshot never observes a partial update.
type Context struct {
	log *slog.Logger

	mu       sync.RWMutex
	fields   map[uuid.UUID]*Field
	captures []CapturedState
}

// NewContext creates an empty aggregation context.
func NewContext(opts ...ContextOption) *Context {
	c := &Context{
		log:    slog.Default(),
		fields: make(map[uuid.UUID]*Field),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Register adds a field to the context and starts collecting its captures.
// Fields aggregate in declaration order (Field.Order, ascending); two fields
// sharing an order key are a caller error and logged as a warning, since
// focus tie-breaking between them is then meaningless.
func (c *Context) Register(f *Field) UnregisterFunc {
	c.mu.Lock()
	for _, existing := range c.fields {
		if existing.Order() == f.Order() {
			c.log.Warn("duplicate field order key", "order", f.Order())
			break
		}
	}
	c.fields[f.ID()] = f
	c.rebuildLocked()
	c.mu.Unlock()

	f.setOnCapture(c.refresh)

	id := f.ID()
	var once sync.Once
	return func() {
		once.Do(func() {
			f.setOnCapture(nil)
			c.mu.Lock()
			delete(c.fields, id)
			c.rebuildLocked()
			c.mu.Unlock()
		})
	}
}

func (c *Context) refresh() {
	c.mu.Lock()
	c.rebuildLocked()
	c.mu.Unlock()
}

// rebuildLocked replaces the capture list wholesale from the current field
// set, sorted by declaration-order key.
func (c *Context) rebuildLocked() {
	fields := make([]*Field, 0, len(c.fields))
	for _, f := range c.fields {
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool {
		return fields[i].Order() < fields[j].Order()
	})

	captures := make([]CapturedState, len(fields))
	for i, f := range fields {
		captures[i] = f.Capture()
	}
	c.captures = captures
}

// Captures returns the current capture snapshot in declaration order.
func (c *Context) Captures() []CapturedState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.captures
}

// AllInputValid reports whether every registered field is currently valid.
// True for an empty context.
func (c *Context) AllInputValid() bool {
	for _, capture := range c.Captures() {
		if !capture.InputValid() {
			return false
		}
	}
	return true
}

// AllValidationResults concatenates every field's failures in declaration
// order.
func (c *Context) AllValidationResults() []rules.Result {
	var all []rules.Result
	for _, capture := range c.Captures() {
		all = append(all, capture.ValidationResults()...)
	}
	return all
}

// AllDisplayedValidationResults concatenates every field's displayed
// failures in declaration order.
func (c *Context) AllDisplayedValidationResults() []rules.Result {
	var all []rules.Result
	for _, capture := range c.Captures() {
		all = append(all, capture.DisplayedValidationResults()...)
	}
	return all
}

// ValidateSubviews runs every field's validation against its captured
// snapshot and reports whether all fields passed.
//
// Every capture is evaluated, never short-circuited, so each field's
// displayed error state updates in the same pass and the user sees all
// problems at once. If any field fails and switchFocus is true, focus moves
// to the first failing field in declaration order; later failures never
// steal focus.
func (c *Context) ValidateSubviews(switchFocus bool) bool {
	captures := c.Captures()

	var failing []CapturedState
	for _, capture := range captures {
		capture.RunValidation()
		if !capture.InputValid() {
			failing = append(failing, capture)
		}
	}

	if len(failing) == 0 {
		c.log.Debug("aggregate validation passed", "fields", len(captures))
		return true
	}

	c.log.Debug("aggregate validation failed",
		"fields", len(captures),
		"failing", len(failing),
	)
	if switchFocus {
		failing[0].MoveFocus()
	}
	return false
}
