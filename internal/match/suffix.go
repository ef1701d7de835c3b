package match

import (
	"sort"
	"strings"
)

// Suffix length bounds for node type suffixes.
const (
	minSuffixLen = 2
	maxSuffixLen = 4
)

// SuffixTable maps recognized node type suffixes to what they abbreviate,
// e.g. "BTN" -> "button". Keys are uppercase, 2–4 letters.
type SuffixTable map[string]string

// DefaultSuffixTable is the house taxonomy of node type suffixes.
func DefaultSuffixTable() SuffixTable {
	return SuffixTable{
		"ANIM": "animation player",
		"BG":   "background",
		"BTN":  "button",
		"CAM":  "camera",
		"COL":  "collision shape",
		"LBL":  "label",
		"NAV":  "navigation region",
		"SFX":  "sound effect player",
		"SPR":  "sprite",
		"TMR":  "timer",
	}
}

func (t SuffixTable) Known(suffix string) bool {
	_, ok := t[suffix]
	return ok
}

// Expected renders the allowed suffixes for diagnostics, sorted for
// deterministic messages.
func (t SuffixTable) Expected() string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "|")
}

// Validate rejects suffixes that the node-name scanner could never match.
func (t SuffixTable) Validate() error {
	for k := range t {
		if len(k) < minSuffixLen || len(k) > maxSuffixLen {
			return &BadSuffixError{Suffix: k, Reason: "must be 2-4 characters"}
		}
		for i := 0; i < len(k); i++ {
			if !isUpperByte(k[i]) {
				return &BadSuffixError{Suffix: k, Reason: "must be uppercase letters"}
			}
		}
	}
	return nil
}

// BadSuffixError reports an unusable entry in a configured suffix table.
type BadSuffixError struct {
	Suffix string
	Reason string
}

func (e *BadSuffixError) Error() string {
	return "node suffix " + e.Suffix + ": " + e.Reason
}
