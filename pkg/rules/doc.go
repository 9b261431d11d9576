// Package rules provides pure, shareable validation rules for text input and
// ordered rule sets that collect every failure in a single evaluation pass.
//
// A Rule couples a stable identifier, a pure predicate over a string, and a
// human-readable failure message with translation metadata. Rules never hold
// per-field state, so singletons such as NonEmpty() can be reused across any
// number of fields and evaluated from any goroutine.
//
// A Set evaluates all of its rules on every pass, never short-circuiting, so
// the caller always sees the full list of problems at once:
//
//	set := rules.NewSet(rules.NonEmpty(), rules.MinLen(8))
//	failed := set.Evaluate("short") // one Result, from MinLen
//
// Two built-in rule families ship with the package: pattern rules compiled
// from regular expressions (Matches, Email, Digits, ...) and predicate
// closures (Satisfies). Sets can also be declared in YAML and loaded with
// ParseSet.
//
// # Error Handling
//
// Evaluation is total and never returns an error: a failed rule is ordinary
// data, not an exceptional condition. Errors exist only for malformed sets
// (ErrDuplicateRuleID, ErrEmptyRuleID) and malformed YAML declarations
// (ErrUnknownRule, ErrInvalidRuleSpec).
package rules
