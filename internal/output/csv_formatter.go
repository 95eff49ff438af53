package output

import (
	"bytes"
	"encoding/csv"

	"github.com/hazza/property-roi/internal/domain"
)

// CSVFormatter writes one row per report field followed by the rating row.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *domain.Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Field", "Value"}); err != nil {
		return nil, err
	}
	for _, f := range report.Fields {
		if err := w.Write([]string{f.Label, f.Value}); err != nil {
			return nil, err
		}
	}
	if err := w.Write([]string{VerdictHeading, report.Verdict.Message}); err != nil {
		return nil, err
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
