package match

import (
	"conform/internal/diag"
)

const branchExpected = "<issue-number>-<kebab-case-title>"

// Branch checks a raw branch name against `<digits>-<kebab-case-words>`:
// an issue number, a hyphen, then one or more lowercase alphanumeric tokens
// separated by single hyphens.
func Branch(raw string) []Finding {
	if raw == "" {
		return []Finding{{
			Code:     CodeBranchMissingIssueNumber,
			Value:    raw,
			Expected: branchExpected,
			Span:     diag.WholeSpan(raw),
		}}
	}

	var out []Finding

	n := scanDigits(raw)
	title := raw
	titleOff := 0
	if n == 0 {
		out = append(out, Finding{
			Code:     CodeBranchMissingIssueNumber,
			Value:    raw,
			Expected: branchExpected,
			Span:     diag.SpanOf(raw, 0, firstTokenEnd(raw)),
		})
	} else {
		// За номером должен идти дефис; остаток — заголовок.
		if n == len(raw) || raw[n] != '-' {
			out = append(out, Finding{
				Code:     CodeBranchInvalidTitleCasing,
				Value:    raw,
				Expected: branchExpected,
				Span:     diag.SpanOf(raw, n, len(raw)),
			})
			return out
		}
		title = raw[n+1:]
		titleOff = n + 1
	}

	if f, bad := checkKebabTitle(raw, title, titleOff); bad {
		out = append(out, f)
	}
	return out
}

// checkKebabTitle validates `token(-token)*` with tokens of [a-z0-9]+.
// Uppercase letters, underscores, consecutive hyphens, empty tokens and an
// empty title all fail with the same rule; the span points at the first
// offending run when there is one.
func checkKebabTitle(raw, title string, off int) (Finding, bool) {
	fail := func(start, end int) (Finding, bool) {
		return Finding{
			Code:     CodeBranchInvalidTitleCasing,
			Value:    raw,
			Expected: branchExpected,
			Span:     diag.SpanOf(raw, start, end),
		}, true
	}

	if title == "" {
		return fail(0, len(raw))
	}
	prevHyphen := true // запрещает дефис в нулевой позиции заголовка
	for i := 0; i < len(title); i++ {
		b := title[i]
		switch {
		case isKebabByte(b):
			prevHyphen = false
		case b == '-':
			if prevHyphen {
				return fail(off+i, off+i+1)
			}
			prevHyphen = true
		default:
			start := off + i
			end := start + 1
			for end < len(raw) && !isKebabByte(raw[end]) && raw[end] != '-' {
				end++
			}
			return fail(start, end)
		}
	}
	if prevHyphen {
		// заголовок кончается дефисом
		return fail(off+len(title)-1, off+len(title))
	}
	return Finding{}, false
}

func firstTokenEnd(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			return i
		}
	}
	return len(s)
}
