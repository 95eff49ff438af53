package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/hazza/property-roi/internal/domain"
)

// ConsoleFormatter renders the interactive display: three result groups
// followed by the rating verdict.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

var verdictMarkers = map[string]string{
	"error":   "[x]",
	"warning": "[!]",
	"info":    "[i]",
	"success": "[*]",
}

func (c ConsoleFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	d := DisplayPayload(report)

	fmt.Fprintln(&buf, strings.ToUpper(d.Title))
	fmt.Fprintln(&buf, strings.Repeat("=", len(d.Title)))
	for _, k := range []domain.FieldKey{domain.FieldReportDate, domain.FieldPropertyPrice, domain.FieldArea} {
		if f, ok := report.Field(k); ok {
			fmt.Fprintf(&buf, "%-28s %s\n", f.Label+":", f.Value)
		}
	}

	for _, g := range d.Groups {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, g.Name)
		fmt.Fprintln(&buf, strings.Repeat("-", len(g.Name)))
		for _, f := range g.Fields {
			fmt.Fprintf(&buf, "  %-26s %s\n", f.Label+":", f.Value)
		}
	}

	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "%s: %s %s\n", VerdictHeading, verdictMarkers[d.Verdict.Level], d.Verdict.Message)
	return buf.Bytes(), nil
}
