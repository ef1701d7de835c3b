package engine

import (
	"conform/internal/diag"
)

// Result is the outcome of validating one request. OK is true iff no
// Error-severity diagnostic is present; warnings surface without blocking.
type Result struct {
	OK          bool
	Diagnostics []diag.Diagnostic
}

// Merge combines another result into this one, preserving order.
func (r Result) Merge(other Result) Result {
	return Result{
		OK:          r.OK && other.OK,
		Diagnostics: append(r.Diagnostics, other.Diagnostics...),
	}
}

// Counts tallies diagnostics by severity.
func (r Result) Counts() (errors, warnings, infos int) {
	for _, d := range r.Diagnostics {
		switch d.Severity {
		case diag.SevError:
			errors++
		case diag.SevWarning:
			warnings++
		default:
			infos++
		}
	}
	return
}
