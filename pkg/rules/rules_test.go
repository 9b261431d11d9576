package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formkit-go/formkit/pkg/rules"
)

func TestSetEvaluate(t *testing.T) {
	set := rules.NewSet(rules.NonEmpty(), rules.MinLen(8))

	t.Run("collects every failure in order", func(t *testing.T) {
		failed := set.Evaluate("")
		require.Len(t, failed, 2)
		assert.Equal(t, "non_empty", failed[0].RuleID)
		assert.Equal(t, "min_len_8", failed[1].RuleID)
	})

	t.Run("reports only failing rules", func(t *testing.T) {
		failed := set.Evaluate("short")
		require.Len(t, failed, 1)
		assert.Equal(t, "min_len_8", failed[0].RuleID)
		assert.Equal(t, "must be at least 8 characters long", failed[0].Message)
	})

	t.Run("passes when all rules pass", func(t *testing.T) {
		assert.Empty(t, set.Evaluate("longenough"))
	})

	t.Run("empty set is trivially valid", func(t *testing.T) {
		assert.Empty(t, rules.Set{}.Evaluate("anything"))
	})

	t.Run("is deterministic across repeated calls", func(t *testing.T) {
		first := set.Evaluate("short")
		second := set.Evaluate("short")
		assert.Equal(t, first, second)
	})

	t.Run("skips rules with nil predicate", func(t *testing.T) {
		s := rules.NewSet(rules.Rule{ID: "broken", Message: "never reported"})
		assert.Empty(t, s.Evaluate(""))
	})
}

func TestSetValidate(t *testing.T) {
	t.Run("accepts unique identifiers", func(t *testing.T) {
		set := rules.NewSet(rules.NonEmpty(), rules.MinLen(3), rules.MaxLen(10))
		assert.NoError(t, set.Validate())
	})

	t.Run("rejects duplicate identifiers", func(t *testing.T) {
		set := rules.NewSet(rules.NonEmpty(), rules.NonEmpty())
		err := set.Validate()
		require.Error(t, err)
		assert.ErrorIs(t, err, rules.ErrDuplicateRuleID)
		assert.Contains(t, err.Error(), "non_empty")
	})

	t.Run("rejects empty identifier", func(t *testing.T) {
		set := rules.NewSet(rules.Rule{Check: func(string) bool { return true }})
		assert.ErrorIs(t, set.Validate(), rules.ErrEmptyRuleID)
	})

	t.Run("duplicate identifiers still evaluate without panic", func(t *testing.T) {
		set := rules.NewSet(rules.NonEmpty(), rules.NonEmpty())
		failed := set.Evaluate("")
		assert.Len(t, failed, 2)
	})
}

func TestSetIDs(t *testing.T) {
	set := rules.NewSet(rules.NonEmpty(), rules.Email())
	assert.Equal(t, []string{"non_empty", "email"}, set.IDs())
}

func TestNonEmpty(t *testing.T) {
	rule := rules.NonEmpty()

	t.Run("fails for empty string", func(t *testing.T) {
		assert.False(t, rule.Check(""))
	})

	t.Run("fails for whitespace-only string", func(t *testing.T) {
		assert.False(t, rule.Check("   \t"))
	})

	t.Run("passes for content with surrounding whitespace", func(t *testing.T) {
		assert.True(t, rule.Check("  x  "))
	})
}

func TestMinLen(t *testing.T) {
	rule := rules.MinLen(5)

	t.Run("passes at exact length", func(t *testing.T) {
		assert.True(t, rule.Check("12345"))
	})

	t.Run("fails below length", func(t *testing.T) {
		assert.False(t, rule.Check("1234"))
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		assert.True(t, rule.Check("ößäüé"))
	})

	t.Run("carries parameterized identifier", func(t *testing.T) {
		assert.Equal(t, "min_len_5", rule.ID)
		assert.Equal(t, 5, rule.TranslationValues["min"])
	})
}

func TestMaxLen(t *testing.T) {
	rule := rules.MaxLen(3)
	assert.True(t, rule.Check("abc"))
	assert.False(t, rule.Check("abcd"))
}

func TestNoWhitespace(t *testing.T) {
	rule := rules.NoWhitespace()
	assert.True(t, rule.Check("abc"))
	assert.False(t, rule.Check("a b"))
	assert.False(t, rule.Check("a\tb"))
}

func TestSatisfies(t *testing.T) {
	rule := rules.Satisfies("starts_upper", "must start with an uppercase letter", func(s string) bool {
		return s != "" && s[0] >= 'A' && s[0] <= 'Z'
	})

	assert.Equal(t, "starts_upper", rule.ID)
	assert.Equal(t, "validation.starts_upper", rule.TranslationKey)
	assert.True(t, rule.Check("Go"))
	assert.False(t, rule.Check("go"))
}
