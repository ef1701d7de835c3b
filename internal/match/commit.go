package match

import (
	"strings"

	"conform/internal/diag"
)

// CommitOptions fixes the tolerances the convention prose leaves open.
type CommitOptions struct {
	// Types is the allowed set of commit types, matched case-sensitively.
	Types []string
	// RequireSpace makes the separator the two-byte token ": " instead of a
	// bare colon with an optional space.
	RequireSpace bool
}

// DefaultCommitTypes is the conventional-commit type set of the house style.
func DefaultCommitTypes() []string {
	return []string{"feat", "fix", "docs", "style", "refactor", "chore"}
}

func (o CommitOptions) types() []string {
	if len(o.Types) == 0 {
		return DefaultCommitTypes()
	}
	return o.Types
}

// Commit checks a commit message headline against `<type>[(scope)]: <description>`.
//
// The algorithm splits on the first colon, validates the left side against the
// type[(scope)] shape and the right side for a non-empty description after at
// most one leading space. A missing colon short-circuits: no other commit
// finding is reported for such a message.
func Commit(raw string, opts CommitOptions) []Finding {
	sep := strings.IndexByte(raw, ':')
	if sep < 0 {
		return []Finding{{
			Code:     CodeCommitMissingSeparator,
			Value:    raw,
			Expected: "<type>[(scope)]: <description>",
			Span:     diag.WholeSpan(raw),
		}}
	}

	var out []Finding
	out = append(out, checkCommitPrefix(raw, raw[:sep], opts)...)
	out = append(out, checkCommitDescription(raw, sep, opts)...)
	return out
}

// checkCommitPrefix validates `type[(scope)]` left of the colon.
func checkCommitPrefix(raw, left string, opts CommitOptions) []Finding {
	typ := left
	paren := strings.IndexByte(left, '(')
	if paren >= 0 {
		typ = left[:paren]
	}

	if !commitTypeKnown(typ, opts.types()) {
		end := len(typ)
		if end == 0 {
			end = len(left)
		}
		return []Finding{{
			Code:     CodeCommitUnknownType,
			Value:    typ,
			Expected: strings.Join(opts.types(), "|"),
			Span:     diag.SpanOf(raw, 0, end),
		}}
	}
	if paren < 0 {
		return nil
	}

	// Скобки присутствуют: scope обязан закрыться ровно перед двоеточием.
	if left[len(left)-1] != ')' || paren == len(left)-1 {
		return []Finding{{
			Code:     CodeCommitUnknownType,
			Value:    left,
			Expected: "<type>(<scope>)",
			Span:     diag.SpanOf(raw, 0, len(left)),
		}}
	}
	scope := left[paren+1 : len(left)-1]
	if scope == "" {
		return []Finding{{
			Code:     CodeCommitEmptyScope,
			Value:    left,
			Expected: "<type>(<scope>)",
			Span:     diag.SpanOf(raw, paren, len(left)),
		}}
	}
	return nil
}

// checkCommitDescription validates the text right of the colon.
func checkCommitDescription(raw string, sep int, opts CommitOptions) []Finding {
	rest := raw[sep+1:]
	if opts.RequireSpace && rest != "" && rest[0] != ' ' {
		// Разделитель в строгом режиме — ": ", а не ":".
		return []Finding{{
			Code:     CodeCommitMissingSeparator,
			Value:    raw,
			Expected: "<type>[(scope)]: <description>",
			Span:     diag.SpanOf(raw, sep, sep+1),
		}}
	}
	desc := strings.TrimPrefix(rest, " ")
	if strings.TrimSpace(desc) == "" {
		return []Finding{{
			Code:     CodeCommitMissingDescription,
			Value:    raw,
			Expected: "<type>[(scope)]: <description>",
			Span:     diag.SpanOf(raw, sep+1, len(raw)),
		}}
	}
	return nil
}

func commitTypeKnown(typ string, allowed []string) bool {
	for _, t := range allowed {
		if typ == t {
			return true
		}
	}
	return false
}
