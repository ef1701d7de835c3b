package diag

type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Span     Span
	// Seq is the registration index of the producing rule inside its RuleSet.
	// The Bag sorts by it; it is not part of diagnostic identity.
	Seq int
}

func New(ruleID string, sev Severity, msg string, span Span) Diagnostic {
	return Diagnostic{
		RuleID:   ruleID,
		Severity: sev,
		Message:  msg,
		Span:     span,
	}
}

func NewError(ruleID string, msg string, span Span) Diagnostic {
	return New(ruleID, SevError, msg, span)
}

func NewWarning(ruleID string, msg string, span Span) Diagnostic {
	return New(ruleID, SevWarning, msg, span)
}
