package rules

import (
	"conform/internal/diag"
	"conform/internal/match"
)

// Defaults carries the tunable inputs of the built-in rules. Zero values fall
// back to the house conventions.
type Defaults struct {
	Commit   match.CommitOptions
	Suffixes match.SuffixTable
	Schema   *match.Schema
}

func (d Defaults) suffixes() match.SuffixTable {
	if d.Suffixes == nil {
		return match.DefaultSuffixTable()
	}
	return d.Suffixes
}

func (d Defaults) schema() *match.Schema {
	if d.Schema == nil {
		return match.DefaultSchema()
	}
	return d.Schema
}

// DefaultRules builds the built-in rule list in its canonical registration
// order. One rule per failure mode; each wraps the category matcher and keeps
// only the finding it owns.
func DefaultRules(d Defaults) []Rule {
	branch := func(req Request) []match.Finding {
		r, ok := req.(BranchNameRequest)
		if !ok {
			return nil
		}
		return match.Branch(r.Raw)
	}
	commit := func(req Request) []match.Finding {
		r, ok := req.(CommitMessageRequest)
		if !ok {
			return nil
		}
		return match.Commit(r.Raw, d.Commit)
	}
	ident := func(req Request) []match.Finding {
		r, ok := req.(IdentifierRequest)
		if !ok {
			return nil
		}
		return match.Identifier(r.Name, r.Kind, d.suffixes())
	}
	path := func(req Request) []match.Finding {
		r, ok := req.(PathRequest)
		if !ok {
			return nil
		}
		return match.Path(r.Segments, r.Kind, d.schema())
	}

	return []Rule{
		{
			ID:       match.CodeBranchMissingIssueNumber,
			Category: CategoryBranchName,
			Severity: diag.SevError,
			Template: "branch {value} has no leading issue number (expected {expected})",
			Match:    owns(match.CodeBranchMissingIssueNumber, branch),
		},
		{
			ID:       match.CodeBranchInvalidTitleCasing,
			Category: CategoryBranchName,
			Severity: diag.SevError,
			Template: "branch title in {value} is not kebab-case (expected {expected})",
			Match:    owns(match.CodeBranchInvalidTitleCasing, branch),
		},
		{
			ID:       match.CodeCommitMissingSeparator,
			Category: CategoryCommitMessage,
			Severity: diag.SevError,
			Template: "commit message has no type separator (expected {expected})",
			Match:    owns(match.CodeCommitMissingSeparator, commit),
		},
		{
			ID:       match.CodeCommitUnknownType,
			Category: CategoryCommitMessage,
			Severity: diag.SevError,
			Template: "unknown commit type {value} (expected one of {expected})",
			Match:    owns(match.CodeCommitUnknownType, commit),
		},
		{
			ID:       match.CodeCommitEmptyScope,
			Category: CategoryCommitMessage,
			Severity: diag.SevError,
			Template: "commit scope is empty (expected {expected})",
			Match:    owns(match.CodeCommitEmptyScope, commit),
		},
		{
			ID:       match.CodeCommitMissingDescription,
			Category: CategoryCommitMessage,
			Severity: diag.SevError,
			Template: "commit message has no description (expected {expected})",
			Match:    owns(match.CodeCommitMissingDescription, commit),
		},
		{
			ID:       match.CodeIdentifierCasingMismatch,
			Category: CategoryIdentifierCasing,
			Severity: diag.SevError,
			Template: "identifier {value} is not {expected}",
			Match:    owns(match.CodeIdentifierCasingMismatch, ident),
		},
		{
			ID:       match.CodeNodeNameUnknownSuffix,
			Category: CategoryNodeSuffix,
			Severity: diag.SevError,
			Template: "node name {value} has no recognized type suffix (expected one of {expected})",
			Match:    owns(match.CodeNodeNameUnknownSuffix, ident),
		},
		{
			ID:       match.CodePathUnknownRoot,
			Category: CategoryDirectoryPlacement,
			Severity: diag.SevError,
			Template: "unrecognized top-level directory {value} (expected {expected})",
			Match:    owns(match.CodePathUnknownRoot, path),
		},
		{
			ID:       match.CodePathKindNotAllowed,
			Category: CategoryDirectoryPlacement,
			Severity: diag.SevError,
			Template: "{value} artifacts are not allowed here (this subtree accepts: {expected})",
			Match:    owns(match.CodePathKindNotAllowed, path),
		},
	}
}

// DefaultSet builds the built-in rules with no overrides.
func DefaultSet() *Set {
	s, err := NewSet(DefaultRules(Defaults{}))
	if err != nil {
		// Встроенный список правил обязан собираться; дубликат здесь — бага.
		panic(err)
	}
	return s
}
