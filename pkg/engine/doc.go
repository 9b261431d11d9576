// Package engine implements the validation lifecycle of a single text
// input: rule evaluation, debounced submission, derived validity, and
// change notification.
//
// An Engine is created once per input field with the field's rule set and
// lives as long as the field does. Keystroke-driven input goes through
// Submit with debounce enabled, which coalesces a typing burst into one
// trailing evaluation; programmatic validation (a submit button press) goes
// through RunValidation, which runs immediately and supersedes any pending
// debounced evaluation.
//
//	e := engine.New(rules.NewSet(rules.NonEmpty(), rules.MinLen(8)))
//	defer e.Close()
//
//	e.Submit("pas", true)  // pending
//	e.Submit("passw", true) // resets the delay; only this input evaluates
//	e.RunValidation("password") // immediate, cancels the pending run
//
//	e.InputValid()                 // true
//	e.DisplayedValidationResults() // nil
//
// The engine's lifecycle (untouched, valid, invalid) runs on a
// statemachine.Machine and is observable via State and OnChange listeners.
// Validation failures are ordinary data, never errors: evaluation is total.
//
// Configuration follows documented defaults (500ms debounce, both behavior
// flags off) and can be sourced from the environment with OptionsFromEnv.
package engine
