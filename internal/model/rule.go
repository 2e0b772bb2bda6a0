package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRule is returned when a rule name cannot be resolved.
var ErrUnknownRule = errors.New("unknown update rule")

// Rule defines the weight update rule of a simulation.
type Rule byte

const (
	// NoRule is an undefined rule.
	NoRule Rule = iota
	// ProportionalToInput updates each weight by alpha * x * e.
	ProportionalToInput
	// ProportionalToWeight updates each weight by alpha * w * e.
	ProportionalToWeight
)

var rules = map[string]Rule{
	"input":  ProportionalToInput,
	"relu":   ProportionalToInput,
	"x":      ProportionalToInput,
	"weight": ProportionalToWeight,
	"w":      ProportionalToWeight,
}

// KnownRules returns the canonical names of the supported rules.
func KnownRules() []string {
	return []string{ProportionalToInput.String(), ProportionalToWeight.String()}
}

// ParseRule resolves the rule for the given name.
func ParseRule(s string) (Rule, error) {
	if r, ok := rules[strings.ToLower(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return NoRule, fmt.Errorf("'%s' (expected one of %v): %w", s, KnownRules(), ErrUnknownRule)
}

func (r Rule) String() string {
	switch r {
	case ProportionalToInput:
		return "input"
	case ProportionalToWeight:
		return "weight"
	}
	return ""
}

// Formula returns the update formula in readable form.
func (r Rule) Formula() string {
	switch r {
	case ProportionalToInput:
		return "w = w + α × x × e"
	case ProportionalToWeight:
		return "w = w + α × w × e"
	}
	return "-"
}

// Valid checks if the rule is one of the known ones.
func (r Rule) Valid() bool {
	return r == ProportionalToInput || r == ProportionalToWeight
}

func (r Rule) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rule) UnmarshalText(text []byte) error {
	rule, err := ParseRule(string(text))
	if err != nil {
		return err
	}
	*r = rule
	return nil
}
