// Package rules evaluates a path against an ordered list of glob rules
// loaded from a JSON file, gitignore style: the last rule whose pattern
// matches decides, and a negated rule flips the decision.
package rules

import (
	"encoding/json"
	"io/ioutil"

	"github.com/pkg/errors"
	validator "gopkg.in/go-playground/validator.v9"

	"github.com/patmatch/patmatch/pkg/glob"
)

// Rule is a single entry of a rule file.
type Rule struct {
	Pattern string `json:"pattern" validate:"min=1"`
	Negate  bool   `json:"negate"`
}

// Rule file format
type ruleFile = struct {
	Rules []Rule `json:"rules" validate:"min=1,dive"`
}

// RuleSet holds the rules in file order together with their compiled
// machines. Patterns are compiled once at load time.
type RuleSet struct {
	rules    []Rule
	machines []*glob.Machine
}

// Load reads, validates and compiles a JSON rule file.
func Load(filepath string) (*RuleSet, error) {
	file, err := ioutil.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "reading rule file")
	}

	data := ruleFile{}
	if err := json.Unmarshal(file, &data); err != nil {
		return nil, errors.Wrap(err, "parsing rule file")
	}

	if err := validator.New().Struct(data); err != nil {
		return nil, errors.Wrap(err, "invalid rule file")
	}

	return New(data.Rules), nil
}

// New compiles an already-validated list of rules.
func New(ruleList []Rule) *RuleSet {
	rs := &RuleSet{rules: ruleList}

	for _, item := range ruleList {
		pattern, _ := glob.Normalize(item.Pattern, "")
		rs.machines = append(rs.machines, glob.Compile(pattern))
	}

	return rs
}

// Len returns the number of rules in the set.
func (rs *RuleSet) Len() int {
	return len(rs.rules)
}

// Match reports whether path is selected by the rule set.
func (rs *RuleSet) Match(path string) (bool, error) {
	subject := glob.NormalizeSeparators(path)

	selected := false
	for idx, m := range rs.machines {
		hit, err := m.Match(subject)
		if err != nil {
			return false, errors.Wrapf(err, "rule %d (%s)", idx, rs.rules[idx].Pattern)
		}
		if hit {
			selected = !rs.rules[idx].Negate
		}
	}

	return selected, nil
}
