// Package report renders ValidationResults for humans (pretty) and tooling
// (json). The engine never calls into it; the CLI owns rendering and exit
// code mapping.
package report

// Options controls rendering.
type Options struct {
	// Color enables ANSI colors in pretty output.
	Color bool
	// ShowContext prints the offending input with a caret underline.
	ShowContext bool
}
