package match

import (
	"conform/internal/diag"

	"golang.org/x/text/unicode/norm"
)

// IdentKind is the declared kind of the checked identifier; it selects the
// expected casing class.
type IdentKind uint8

const (
	KindVariable IdentKind = iota
	KindFunction
	KindConstant
	KindClassName
	KindSignal
	KindNodeName
)

func (k IdentKind) String() string {
	switch k {
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindConstant:
		return "constant"
	case KindClassName:
		return "class-name"
	case KindSignal:
		return "signal"
	case KindNodeName:
		return "node-name"
	}
	return "unknown"
}

// ParseIdentKind maps a CLI/config string to an IdentKind.
func ParseIdentKind(s string) (IdentKind, bool) {
	switch s {
	case "variable", "var":
		return KindVariable, true
	case "function", "func":
		return KindFunction, true
	case "constant", "const":
		return KindConstant, true
	case "class-name", "class":
		return KindClassName, true
	case "signal":
		return KindSignal, true
	case "node-name", "node":
		return KindNodeName, true
	}
	return KindVariable, false
}

// casingClass names the expected class in diagnostics.
func (k IdentKind) casingClass() string {
	switch k {
	case KindConstant:
		return "UPPER_SNAKE_CASE"
	case KindClassName:
		return "PascalCase"
	case KindNodeName:
		return "PascalCase with a type suffix"
	default:
		return "lower_snake_case"
	}
}

// Identifier checks a name against the casing class of its declared kind.
// The scan is a plain character-class pass, not a tokenizer; the name is
// NFC-normalized first so visually identical inputs classify identically.
func Identifier(name string, kind IdentKind, suffixes SuffixTable) []Finding {
	name = norm.NFC.String(name)

	switch kind {
	case KindVariable, KindFunction, KindSignal:
		return checkSnake(name, kind, isLowerSnakeByte)
	case KindConstant:
		return checkSnake(name, kind, isUpperSnakeByte)
	case KindClassName:
		if !isPascal(name) {
			return []Finding{casingFinding(name, kind)}
		}
		return nil
	case KindNodeName:
		return checkNodeName(name, suffixes)
	}
	return nil
}

func casingFinding(name string, kind IdentKind) Finding {
	return Finding{
		Code:     CodeIdentifierCasingMismatch,
		Value:    name,
		Expected: kind.casingClass(),
		Span:     diag.WholeSpan(name),
	}
}

// checkSnake validates snake-case identifiers. Ведущие подчёркивания
// разрешены (приватные имена), ведущая цифра — нет.
func checkSnake(name string, kind IdentKind, classOK func(byte) bool) []Finding {
	if name == "" || isDigitByte(name[0]) {
		return []Finding{casingFinding(name, kind)}
	}
	for i := 0; i < len(name); i++ {
		if !classOK(name[i]) {
			return []Finding{casingFinding(name, kind)}
		}
	}
	return nil
}

func isPascal(name string) bool {
	if name == "" || !isUpperByte(name[0]) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if !isLetterByte(name[i]) && !isDigitByte(name[i]) {
			return false
		}
	}
	return true
}

// checkNodeName validates PascalCase plus a recognized 2–4 letter uppercase
// type suffix, e.g. StartBTN or ScoreLBL.
func checkNodeName(name string, suffixes SuffixTable) []Finding {
	if !isPascal(name) {
		return []Finding{casingFinding(name, KindNodeName)}
	}
	start := scanTrailingUpper(name)
	suffix := name[start:]
	if len(suffix) < minSuffixLen || len(suffix) > maxSuffixLen || start == 0 || !suffixes.Known(suffix) {
		span := diag.SpanOf(name, start, len(name))
		if suffix == "" {
			span = diag.WholeSpan(name)
		}
		return []Finding{{
			Code:     CodeNodeNameUnknownSuffix,
			Value:    name,
			Expected: suffixes.Expected(),
			Span:     span,
		}}
	}
	return nil
}
