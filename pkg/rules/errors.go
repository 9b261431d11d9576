package rules

import "errors"

var (
	// ErrDuplicateRuleID is returned by Set.Validate when two rules in the
	// same set share an identifier.
	ErrDuplicateRuleID = errors.New("rules: duplicate rule identifier in set")

	// ErrEmptyRuleID is returned by Set.Validate when a rule has no identifier.
	ErrEmptyRuleID = errors.New("rules: rule identifier must not be empty")

	// ErrUnknownRule is returned by ParseSet for a rule name it does not know.
	ErrUnknownRule = errors.New("rules: unknown rule name")

	// ErrInvalidRuleSpec is returned by ParseSet when a rule entry is missing
	// a required parameter or carries an invalid one.
	ErrInvalidRuleSpec = errors.New("rules: invalid rule specification")
)
