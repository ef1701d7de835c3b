package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"conform/internal/diag"
	"conform/internal/engine"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	infoColor = color.New(color.FgCyan)
	ruleColor = color.New(color.Faint)
)

// Pretty prints one result in the form:
//
//	<label>:<start>-<end>: <SEVERITY> <RuleID>: <message>
//	    <input>
//	    ^~~~
//
// The caret line is aligned by display width, so wide runes in the input do
// not skew the underline.
func Pretty(w io.Writer, label, input string, res engine.Result, opts Options) {
	for _, d := range res.Diagnostics {
		sev := severityLabel(d.Severity, opts.Color)
		loc := label
		if !d.Span.Empty() {
			loc = fmt.Sprintf("%s:%s", label, d.Span.String())
		}
		rule := d.RuleID
		if opts.Color {
			rule = ruleColor.Sprint(rule)
		}
		fmt.Fprintf(w, "%s: %s %s: %s\n", loc, sev, rule, d.Message)
		if opts.ShowContext && input != "" {
			writeContext(w, input, d.Span)
		}
	}
}

func severityLabel(s diag.Severity, colored bool) string {
	if !colored {
		return s.String()
	}
	switch s {
	case diag.SevError:
		return errColor.Sprint(s.String())
	case diag.SevWarning:
		return warnColor.Sprint(s.String())
	default:
		return infoColor.Sprint(s.String())
	}
}

// writeContext prints the input line and a ^~~~ underline under the span.
func writeContext(w io.Writer, input string, span diag.Span) {
	fmt.Fprintf(w, "    %s\n", input)
	if span.Empty() || int(span.Start) > len(input) {
		return
	}
	end := int(span.End)
	if end > len(input) {
		end = len(input)
	}
	pad := runewidth.StringWidth(input[:span.Start])
	width := runewidth.StringWidth(input[span.Start:end])
	if width == 0 {
		width = 1
	}
	fmt.Fprintf(w, "    %s^%s\n", strings.Repeat(" ", pad), strings.Repeat("~", width-1))
}
