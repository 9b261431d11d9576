package form_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formkit-go/formkit/pkg/engine"
	"github.com/formkit-go/formkit/pkg/form"
	"github.com/formkit-go/formkit/pkg/rules"
)

func TestField(t *testing.T) {
	t.Run("has a stable identity and order key", func(t *testing.T) {
		eng := engine.New(rules.NewSet(rules.NonEmpty()))
		t.Cleanup(eng.Close)

		f := form.NewField(7, eng)
		assert.Equal(t, 7, f.Order())
		assert.Equal(t, f.ID(), f.ID())
		assert.Same(t, eng, f.Engine())
	})

	t.Run("identities are unique across fields", func(t *testing.T) {
		a := form.NewField(1, engine.New(nil))
		b := form.NewField(1, engine.New(nil))
		t.Cleanup(func() { a.Close(); b.Close() })
		assert.NotEqual(t, a.ID(), b.ID())
	})

	t.Run("SetValue submits debounced", func(t *testing.T) {
		t.Parallel()

		eng := engine.New(rules.NewSet(rules.MinLen(8)), engine.WithDebounceFor(20*time.Millisecond))
		t.Cleanup(eng.Close)
		f := form.NewField(1, eng)

		f.SetValue("lo")
		f.SetValue("longenough")
		assert.Equal(t, "longenough", f.Value())
		assert.Equal(t, engine.StateUntouched, eng.State())

		require.Eventually(t, eng.InputValid, time.Second, 5*time.Millisecond)
	})

	t.Run("Validate runs immediately on the current value", func(t *testing.T) {
		eng := engine.New(rules.NewSet(rules.MinLen(8)))
		t.Cleanup(eng.Close)
		f := form.NewField(1, eng)

		f.SetValue("short")
		f.Validate()
		assert.False(t, eng.InputValid())
		require.Len(t, eng.ValidationResults(), 1)
	})

	t.Run("capture snapshots the value at capture time", func(t *testing.T) {
		eng := engine.New(rules.NewSet(rules.NonEmpty()), engine.WithDebounceFor(time.Hour))
		t.Cleanup(eng.Close)
		f := form.NewField(1, eng)

		f.SetValue("first")
		capture := f.Capture()
		f.SetValue("second")

		assert.Equal(t, "first", capture.Input())
		assert.False(t, capture.Equal(f.Capture()))
	})

	t.Run("capture carries focus capability when controller attached", func(t *testing.T) {
		focus := form.NewFocusController()
		eng := engine.New(nil)
		t.Cleanup(eng.Close)
		f := form.NewField(1, eng, form.WithFocusController(focus))

		f.Capture().MoveFocus()
		current, ok := focus.Current()
		require.True(t, ok)
		assert.Equal(t, f.ID(), current)
	})

	t.Run("close cancels pending evaluation", func(t *testing.T) {
		t.Parallel()

		eng := engine.New(rules.NewSet(rules.NonEmpty()), engine.WithDebounceFor(20*time.Millisecond))
		f := form.NewField(1, eng)

		f.SetValue("pending")
		f.Close()

		time.Sleep(60 * time.Millisecond)
		assert.Equal(t, engine.StateUntouched, eng.State())
	})
}

func TestFocusController(t *testing.T) {
	t.Run("starts blurred", func(t *testing.T) {
		fc := form.NewFocusController()
		_, ok := fc.Current()
		assert.False(t, ok)
	})

	t.Run("tracks the most recent focus", func(t *testing.T) {
		fc := form.NewFocusController()
		a := form.NewField(1, engine.New(nil), form.WithFocusController(fc))
		b := form.NewField(2, engine.New(nil), form.WithFocusController(fc))
		t.Cleanup(func() { a.Close(); b.Close() })

		fc.Focus(a.ID())
		fc.Focus(b.ID())
		current, ok := fc.Current()
		require.True(t, ok)
		assert.Equal(t, b.ID(), current)
	})

	t.Run("blur clears focus", func(t *testing.T) {
		fc := form.NewFocusController()
		f := form.NewField(1, engine.New(nil), form.WithFocusController(fc))
		t.Cleanup(f.Close)

		fc.Focus(f.ID())
		fc.Blur()
		_, ok := fc.Current()
		assert.False(t, ok)
	})
}
