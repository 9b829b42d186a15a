package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/grantset-dev/grantset/internal/application/services"
)

// TableFormatter formats decision reports as a human-readable table.
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// Format writes the decision report as a table.
func (f *TableFormatter) Format(report *Report) error {
	fmt.Fprintf(f.writer, "Descriptor: %s\n", report.Descriptor)
	fmt.Fprintf(f.writer, "Checked: %s\n", report.CheckedAt.Format(time.RFC3339))
	fmt.Fprintln(f.writer)

	if len(report.Decisions) == 0 {
		fmt.Fprintln(f.writer, "No checks evaluated.")
		return nil
	}

	fmt.Fprintln(f.writer, "Decisions:")
	fmt.Fprintln(f.writer, strings.Repeat("─", 80))

	for _, d := range report.Decisions {
		f.formatDecision(d)
	}

	fmt.Fprintln(f.writer, strings.Repeat("─", 80))
	fmt.Fprintln(f.writer)

	f.formatSummary(report.Summary)

	return nil
}

// formatDecision formats a single decision.
func (f *TableFormatter) formatDecision(d services.Decision) {
	symbol := "✗ DENY "
	if d.Granted {
		symbol = "✓ GRANT"
	}

	fmt.Fprintf(f.writer, "%s %s on %s\n", symbol, d.Application, d.Resource)
	if len(d.Actions) > 0 {
		fmt.Fprintf(f.writer, "  Actions: %s\n", strings.Join(d.Actions, ", "))
	}
	fmt.Fprintf(f.writer, "  Decision ID: %s\n", d.ID)
}

// formatSummary formats the summary counts.
func (f *TableFormatter) formatSummary(s Summary) {
	fmt.Fprintf(f.writer, "Summary: %d checked, %d granted, %d denied\n",
		s.Total, s.Granted, s.Denied)
}
