package report

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	summaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
	summaryOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	summaryFail = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Summary prints a closing block after a scan: file counts and diagnostic
// totals. Plain text without colors when color output is off.
func Summary(w io.Writer, files, skipped, errors, warnings int, colored bool) {
	status := "PASS"
	if errors > 0 {
		status = "FAIL"
	}
	line := fmt.Sprintf("%s  %d files checked, %d skipped, %d errors, %d warnings",
		status, files, skipped, errors, warnings)
	if !colored {
		fmt.Fprintln(w, line)
		return
	}
	styled := summaryOK.Render(status)
	if errors > 0 {
		styled = summaryFail.Render(status)
	}
	body := fmt.Sprintf("%s  %d files checked, %d skipped, %d errors, %d warnings",
		styled, files, skipped, errors, warnings)
	fmt.Fprintln(w, summaryBox.Render(body))
}
