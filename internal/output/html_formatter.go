package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/hazza/property-roi/internal/domain"
	"github.com/hazza/property-roi/pkg/dateutil"
)

// HTMLFormatter produces a standalone HTML page of the interactive display.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"timestamp": dateutil.FormatTimestamp,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(report *domain.Report) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Display
		VerdictHeading string
		Report         *domain.Report
	}{DisplayPayload(report), VerdictHeading, report}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
