package rules

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NonEmpty validates that the input is not empty after trimming whitespace.
func NonEmpty() Rule {
	return Rule{
		ID: "non_empty",
		Check: func(input string) bool {
			return strings.TrimSpace(input) != ""
		},
		Message:        "must not be empty",
		TranslationKey: "validation.non_empty",
	}
}

// MinLen validates that the input is at least min characters long.
// Length is counted in runes, not bytes.
func MinLen(min int) Rule {
	return Rule{
		ID: fmt.Sprintf("min_len_%d", min),
		Check: func(input string) bool {
			return utf8.RuneCountInString(input) >= min
		},
		Message:        fmt.Sprintf("must be at least %d characters long", min),
		TranslationKey: "validation.min_length",
		TranslationValues: map[string]any{
			"min": min,
		},
	}
}

// MaxLen validates that the input is at most max characters long.
func MaxLen(max int) Rule {
	return Rule{
		ID: fmt.Sprintf("max_len_%d", max),
		Check: func(input string) bool {
			return utf8.RuneCountInString(input) <= max
		},
		Message:        fmt.Sprintf("must be at most %d characters long", max),
		TranslationKey: "validation.max_length",
		TranslationValues: map[string]any{
			"max": max,
		},
	}
}

// NoWhitespace validates that the input contains no whitespace characters.
func NoWhitespace() Rule {
	return Rule{
		ID: "no_whitespace",
		Check: func(input string) bool {
			return !strings.ContainsAny(input, " \t\n\r")
		},
		Message:        "must not contain whitespace",
		TranslationKey: "validation.no_whitespace",
	}
}

// Satisfies wraps an arbitrary predicate closure into a rule. The predicate
// must be pure; the package cannot enforce this, only document it.
func Satisfies(id, message string, check func(string) bool) Rule {
	return Rule{
		ID:             id,
		Check:          check,
		Message:        message,
		TranslationKey: "validation." + id,
	}
}
