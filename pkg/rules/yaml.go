package rules

import (
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ruleSpec is the YAML shape of a single rule entry.
type ruleSpec struct {
	Rule        string `yaml:"rule"`
	ID          string `yaml:"id,omitempty"`
	Min         *int   `yaml:"min,omitempty"`
	Max         *int   `yaml:"max,omitempty"`
	Pattern     string `yaml:"pattern,omitempty"`
	Description string `yaml:"description,omitempty"`
	Message     string `yaml:"message,omitempty"`
}

type setSpec struct {
	Rules []ruleSpec `yaml:"rules"`
}

// ParseSet builds a Set from a YAML document. The document lists built-in
// rules by name, optionally parameterized:
//
//	rules:
//	  - rule: non_empty
//	  - rule: min_len
//	    min: 8
//	  - rule: matches
//	    id: zip
//	    pattern: "^[0-9]{5}$"
//	    description: ZIP code
//
// Supported names: non_empty, min_len, max_len, no_whitespace, email,
// digits, matches, does_not_match. A custom message overrides the built-in
// one. The resulting set is checked with Validate before it is returned.
func ParseSet(data []byte) (Set, error) {
	var spec setSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("rules: parse yaml: %w", err)
	}

	set := make(Set, 0, len(spec.Rules))
	for i, rs := range spec.Rules {
		rule, err := buildRule(rs)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		set = append(set, rule)
	}

	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func buildRule(rs ruleSpec) (Rule, error) {
	var rule Rule

	switch rs.Rule {
	case "non_empty":
		rule = NonEmpty()
	case "min_len":
		if rs.Min == nil {
			return Rule{}, fmt.Errorf("%w: min_len requires 'min'", ErrInvalidRuleSpec)
		}
		rule = MinLen(*rs.Min)
	case "max_len":
		if rs.Max == nil {
			return Rule{}, fmt.Errorf("%w: max_len requires 'max'", ErrInvalidRuleSpec)
		}
		rule = MaxLen(*rs.Max)
	case "no_whitespace":
		rule = NoWhitespace()
	case "email":
		rule = Email()
	case "digits":
		rule = Digits()
	case "matches", "does_not_match":
		if rs.ID == "" || rs.Pattern == "" {
			return Rule{}, fmt.Errorf("%w: %s requires 'id' and 'pattern'", ErrInvalidRuleSpec, rs.Rule)
		}
		if _, err := regexp.Compile(rs.Pattern); err != nil {
			return Rule{}, fmt.Errorf("%w: bad pattern %q: %v", ErrInvalidRuleSpec, rs.Pattern, err)
		}
		desc := rs.Description
		if desc == "" {
			desc = rs.ID
		}
		if rs.Rule == "matches" {
			rule = Matches(rs.ID, rs.Pattern, desc)
		} else {
			rule = DoesNotMatch(rs.ID, rs.Pattern, desc)
		}
	default:
		return Rule{}, fmt.Errorf("%w: %q", ErrUnknownRule, rs.Rule)
	}

	if rs.ID != "" {
		rule.ID = rs.ID
	}
	if rs.Message != "" {
		rule.Message = rs.Message
	}
	return rule, nil
}
