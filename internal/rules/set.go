package rules

import (
	"fmt"

	"conform/internal/diag"
	"conform/internal/match"
)

// Set is an ordered, immutable collection of rules, unique by ID.
// Registration order is significant: diagnostics are reported in it.
type Set struct {
	rules []Rule
	index map[string]int
}

// Option adjusts a Set at build time. Overrides referencing unknown rule IDs
// fail the build: a typo in config must not silently keep a rule enabled.
type Option func(*setBuilder)

type setBuilder struct {
	disabled   map[string]bool
	severities map[string]diag.Severity
}

// WithDisabled drops the named rules from the built set.
func WithDisabled(ids ...string) Option {
	return func(b *setBuilder) {
		for _, id := range ids {
			b.disabled[id] = true
		}
	}
}

// WithSeverity overrides the severity of one rule.
func WithSeverity(id string, sev diag.Severity) Option {
	return func(b *setBuilder) {
		b.severities[id] = sev
	}
}

// NewSet builds a Set. A duplicate rule ID is a construction-time error,
// reported before any validation can run.
func NewSet(rules []Rule, opts ...Option) (*Set, error) {
	b := &setBuilder{
		disabled:   make(map[string]bool),
		severities: make(map[string]diag.Severity),
	}
	for _, opt := range opts {
		opt(b)
	}

	known := make(map[string]bool, len(rules))
	for _, r := range rules {
		if known[r.ID] {
			return nil, fmt.Errorf("rule set: duplicate rule id %q", r.ID)
		}
		known[r.ID] = true
	}
	for id := range b.disabled {
		if !known[id] {
			return nil, fmt.Errorf("rule set: disable override for unknown rule %q", id)
		}
	}
	for id := range b.severities {
		if !known[id] {
			return nil, fmt.Errorf("rule set: severity override for unknown rule %q", id)
		}
	}

	s := &Set{index: make(map[string]int)}
	for _, r := range rules {
		if b.disabled[r.ID] {
			continue
		}
		if sev, ok := b.severities[r.ID]; ok {
			r.Severity = sev
		}
		s.index[r.ID] = len(s.rules)
		s.rules = append(s.rules, r)
	}
	return s, nil
}

// Len returns the number of enabled rules.
func (s *Set) Len() int {
	return len(s.rules)
}

// Rules возвращает read-only slice правил в порядке регистрации.
// ВАЖНО: не модифицируйте возвращаемый срез!
func (s *Set) Rules() []Rule {
	return s.rules
}

// Lookup finds a rule by its ID.
func (s *Set) Lookup(id string) (Rule, bool) {
	i, ok := s.index[id]
	if !ok {
		return Rule{}, false
	}
	return s.rules[i], true
}

// Applied pairs a rule with its registration sequence inside the set.
type Applied struct {
	Rule Rule
	Seq  int
}

// Applicable selects the rules matching a request's category tag. Identifier
// requests for node names additionally pull in the node-suffix rules, since
// both casing and suffix taxonomy apply to them.
func (s *Set) Applicable(req Request) []Applied {
	cat := req.Category()
	nodeName := false
	if ir, ok := req.(IdentifierRequest); ok && ir.Kind == match.KindNodeName {
		nodeName = true
	}
	var out []Applied
	for i, r := range s.rules {
		if r.Category == cat || (nodeName && r.Category == CategoryNodeSuffix) {
			out = append(out, Applied{Rule: r, Seq: i})
		}
	}
	return out
}
