package match

import (
	"conform/internal/diag"
)

// Finding is one negative result from a matcher, keyed by the stable rule ID
// that owns it. Value carries the offending text, Expected the pattern or
// class the value failed against; both feed the rule's message template.
type Finding struct {
	Code     string
	Value    string
	Expected string
	Span     diag.Span
}

// Stable rule identifiers. Одна константа — одно правило; ID попадает
// в диагностику как есть, менять нельзя.
const (
	CodeBranchMissingIssueNumber = "BranchName.MissingIssueNumber"
	CodeBranchInvalidTitleCasing = "BranchName.InvalidTitleCasing"

	CodeCommitMissingSeparator   = "Commit.MissingSeparator"
	CodeCommitUnknownType        = "Commit.UnknownType"
	CodeCommitEmptyScope         = "Commit.EmptyScope"
	CodeCommitMissingDescription = "Commit.MissingDescription"

	CodeIdentifierCasingMismatch = "Identifier.CasingMismatch"
	CodeNodeNameUnknownSuffix    = "NodeName.UnknownSuffix"

	CodePathUnknownRoot    = "Path.UnknownRoot"
	CodePathKindNotAllowed = "Path.KindNotAllowedHere"
)
