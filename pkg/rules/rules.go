package rules

import "fmt"

// Rule is a single validation rule: a pure predicate over a string input plus
// the failure message reported when the predicate returns false.
//
// Rules are immutable after construction and carry no per-field state, so a
// single Rule value (e.g. NonEmpty()) can be shared across any number of
// input fields and evaluated concurrently.
type Rule struct {
	// ID uniquely identifies the rule within any Set it participates in.
	ID string

	// Check is the predicate. It must be a pure function of the input:
	// no side effects, no hidden state, deterministic across calls.
	Check func(input string) bool

	// Message is the human-readable failure message.
	Message string

	// TranslationKey and TranslationValues carry i18n metadata for the
	// presentation layer. The package itself never resolves translations.
	TranslationKey    string
	TranslationValues map[string]any
}

// Result describes one failed rule after an evaluation pass.
type Result struct {
	RuleID            string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Set is an ordered collection of rules evaluated together. Order defines
// evaluation and reporting order, not precedence: every rule is always
// evaluated, never short-circuited, so one pass collects all failures.
//
// An empty Set is trivially valid.
type Set []Rule

// NewSet builds a Set from the given rules in order.
func NewSet(rules ...Rule) Set {
	return Set(rules)
}

// Evaluate runs every rule in the set against input and returns one Result
// per failed rule, in set order. A nil return means the input passed.
func (s Set) Evaluate(input string) []Result {
	var failed []Result
	for _, r := range s {
		if r.Check == nil || r.Check(input) {
			continue
		}
		failed = append(failed, Result{
			RuleID:            r.ID,
			Message:           r.Message,
			TranslationKey:    r.TranslationKey,
			TranslationValues: r.TranslationValues,
		})
	}
	return failed
}

// Validate reports whether the set is well-formed. Duplicate rule IDs within
// one set are a caller error: evaluation still works (both rules run and
// report), but result ordering between the duplicates is meaningless to
// consumers keyed by ID.
func (s Set) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, r := range s {
		if r.ID == "" {
			return ErrEmptyRuleID
		}
		if _, ok := seen[r.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateRuleID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

// IDs returns the rule identifiers in set order.
func (s Set) IDs() []string {
	ids := make([]string, len(s))
	for i, r := range s {
		ids[i] = r.ID
	}
	return ids
}
