package report

import (
	"encoding/json"
	"io"

	"conform/internal/engine"
)

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Input     string `json:"input"`
	RuleID    string `json:"rule_id"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	StartByte uint32 `json:"start_byte,omitempty"`
	EndByte   uint32 `json:"end_byte,omitempty"`
}

// ResultJSON представляет корневую структуру JSON вывода
type ResultJSON struct {
	OK          bool             `json:"ok"`
	Count       int              `json:"count"`
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
}

// BuildJSON converts a result to its JSON shape.
func BuildJSON(label string, res engine.Result) ResultJSON {
	out := ResultJSON{
		OK:          res.OK,
		Count:       len(res.Diagnostics),
		Diagnostics: make([]DiagnosticJSON, 0, len(res.Diagnostics)),
	}
	for _, d := range res.Diagnostics {
		out.Diagnostics = append(out.Diagnostics, DiagnosticJSON{
			Input:     label,
			RuleID:    d.RuleID,
			Severity:  d.Severity.String(),
			Message:   d.Message,
			StartByte: d.Span.Start,
			EndByte:   d.Span.End,
		})
	}
	return out
}

// JSON writes one result as an indented JSON document.
func JSON(w io.Writer, label string, res engine.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildJSON(label, res))
}
