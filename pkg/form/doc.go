// Package form connects per-field validation engines into a form-level
// whole: fields publish lightweight captured-state handles, a context
// aggregates them, and an aggregate validation pass reports overall
// validity and moves focus to the first failing field.
//
// A Field owns one engine.Engine plus the field's live input value and an
// explicit declaration-order key. On every edit the field submits the value
// to its engine (debounced) and republishes its CapturedState to the
// Context it is registered with. The Context never reaches down into
// fields: handles flow up through registration, and the stored capture list
// is replaced wholesale on every change.
//
//	focus := form.NewFocusController()
//	ctx := form.NewContext()
//
//	email := form.NewField(0, engine.New(rules.NewSet(rules.Email())),
//	    form.WithFocusController(focus))
//	defer ctx.Register(email)()
//
//	email.SetValue("user@example") // debounced evaluation
//	if !ctx.ValidateSubviews(true) {
//	    // focus moved to the first failing field
//	}
//
// An aggregate pass validates each field against its captured snapshot, not
// a live read, so the whole form is judged at one consistent moment even if
// fields keep changing during the pass.
package form
