package rules

import (
	"fmt"
	"regexp"
)

// emailRegex intentionally stays permissive: real address verification
// belongs to a confirmation flow, not a text-field rule.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Matches validates the full input against a regular expression.
// The pattern is compiled once at construction and panics on an invalid
// pattern, same as regexp.MustCompile: a bad pattern is a programming error,
// not a runtime condition.
func Matches(id, pattern, description string) Rule {
	regex := regexp.MustCompile(pattern)
	return Rule{
		ID: id,
		Check: func(input string) bool {
			return regex.MatchString(input)
		},
		Message:        fmt.Sprintf("must match %s format", description),
		TranslationKey: "validation.matches",
		TranslationValues: map[string]any{
			"pattern":     pattern,
			"description": description,
		},
	}
}

// DoesNotMatch validates that the input does not match a regular expression.
func DoesNotMatch(id, pattern, description string) Rule {
	regex := regexp.MustCompile(pattern)
	return Rule{
		ID: id,
		Check: func(input string) bool {
			return !regex.MatchString(input)
		},
		Message:        fmt.Sprintf("must not contain %s", description),
		TranslationKey: "validation.does_not_match",
		TranslationValues: map[string]any{
			"pattern":     pattern,
			"description": description,
		},
	}
}

// Email validates that the input has the shape of an email address.
func Email() Rule {
	return Rule{
		ID: "email",
		Check: func(input string) bool {
			return emailRegex.MatchString(input)
		},
		Message:        "must be a valid email address",
		TranslationKey: "validation.email",
	}
}

// Digits validates that the input consists solely of ASCII digits.
func Digits() Rule {
	return Matches("digits", `^[0-9]+$`, "digits-only")
}
