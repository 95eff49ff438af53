package output

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/hazza/property-roi/internal/domain"
	"github.com/hazza/property-roi/pkg/dateutil"
)

// Letter page geometry in points. Layout positions are measured from the
// bottom edge, then flipped for fpdf, which measures from the top.
const (
	pdfPageHeight  = 792.0
	pdfMarginLeft  = 50.0
	pdfTitleY      = 750.0
	pdfStampY      = 735.0
	pdfDateY       = 720.0
	pdfFirstValueY = 690.0
	pdfLinePitch   = 20.0
	pdfVerdictGap  = 35.0
)

// PDFFormatter renders the report as a single letter-size page.
type PDFFormatter struct {
	// Uncompressed leaves page streams readable; used by tests.
	Uncompressed bool
}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *domain.Report) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetCompression(!p.Uncompressed)
	pdf.SetTitle(report.Title, true)
	pdf.SetCreator("property-roi", true)
	pdf.SetCreationDate(report.GeneratedAt)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	text := func(y float64, s string) { pdf.Text(pdfMarginLeft, pdfPageHeight-y, tr(s)) }

	pdf.SetFont("Helvetica", "B", 16)
	text(pdfTitleY, report.Title)

	pdf.SetFont("Helvetica", "", 9)
	text(pdfStampY, "Generated: "+dateutil.FormatTimestamp(report.GeneratedAt))

	pdf.SetFont("Helvetica", "", 12)
	y := pdfFirstValueY
	for _, f := range report.Fields {
		line := fmt.Sprintf("%s: %s", f.Label, f.Value)
		if f.Key == domain.FieldReportDate {
			text(pdfDateY, line)
			continue
		}
		text(y, line)
		y -= pdfLinePitch
	}

	y -= pdfVerdictGap - pdfLinePitch
	pdf.SetFont("Helvetica", "B", 13)
	text(y, VerdictHeading+":")
	pdf.SetFont("Helvetica", "", 12)
	text(y-pdfLinePitch, report.Verdict.Message)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
