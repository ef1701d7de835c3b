package rules

import (
	"strings"

	"conform/internal/diag"
	"conform/internal/match"
)

// MatchFunc evaluates a request and yields at most one finding. It must be
// pure: no IO, no shared state, same output for the same request.
type MatchFunc func(Request) (match.Finding, bool)

// Rule is one named convention check. Immutable once constructed.
type Rule struct {
	ID       string
	Category Category
	Severity diag.Severity
	// Template is the diagnostic message with {value} and {expected}
	// placeholders filled from the finding.
	Template string
	Match    MatchFunc
}

// Render fills the rule's message template from a finding.
func (r Rule) Render(f match.Finding) string {
	return strings.NewReplacer(
		"{value}", f.Value,
		"{expected}", f.Expected,
	).Replace(r.Template)
}

// Apply runs the matcher and, on a finding, builds the diagnostic carrying
// the given registration sequence.
func (r Rule) Apply(req Request, seq int) (diag.Diagnostic, bool) {
	f, ok := r.Match(req)
	if !ok {
		return diag.Diagnostic{}, false
	}
	d := diag.New(r.ID, r.Severity, r.Render(f), f.Span)
	d.Seq = seq
	return d, true
}

// owns builds a MatchFunc that runs a category matcher and keeps only the
// finding belonging to the given rule ID. Matchers report every violation
// they see; the rule layer owns the one-diagnostic-per-rule contract.
func owns(id string, all func(Request) []match.Finding) MatchFunc {
	return func(req Request) (match.Finding, bool) {
		for _, f := range all(req) {
			if f.Code == id {
				return f, true
			}
		}
		return match.Finding{}, false
	}
}
