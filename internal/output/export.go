package output

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hazza/property-roi/internal/calculation"
	"github.com/hazza/property-roi/internal/config"
	"github.com/hazza/property-roi/internal/domain"
	"github.com/hazza/property-roi/pkg/dateutil"
)

// ErrExportFailed wraps any failure to produce or store the report document.
var ErrExportFailed = errors.New("report export failed")

// Document is a rendered report ready for delivery.
type Document struct {
	FileName string
	MIMEType string
	Data     []byte
	Report   *domain.Report
}

// Exporter turns an assessment into the downloadable report document.
// It holds no per-request state and is safe for concurrent use.
type Exporter struct {
	Settings  config.ReportSettings
	Formatter Formatter
	Logger    calculation.Logger

	now   func() time.Time
	newID func() string
}

// NewExporter creates an exporter rendering PDF documents per s.
func NewExporter(s config.ReportSettings) *Exporter {
	return &Exporter{
		Settings:  s,
		Formatter: PDFFormatter{},
		Logger:    calculation.NopLogger{},
		now:       calculation.Now,
		newID:     uuid.NewString,
	}
}

// Render builds the report for a and renders it in memory.
func (e *Exporter) Render(a domain.ReturnAssessment) (*Document, error) {
	at := e.now()
	report := BuildReport(a, e.Settings, at)
	data, err := e.Formatter.Format(report)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	return &Document{
		FileName: e.fileName(at),
		MIMEType: "application/pdf",
		Data:     data,
		Report:   report,
	}, nil
}

// Export renders the document for a and writes it under the configured
// output directory. The file appears complete or not at all.
func (e *Exporter) Export(a domain.ReturnAssessment) (string, error) {
	doc, err := e.Render(a)
	if err != nil {
		return "", err
	}
	dir := e.Settings.OutputDir
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, doc.FileName)
	if err := writeAtomic(path, doc.Data); err != nil {
		e.Logger.Errorf("export to %s failed: %v", path, err)
		return "", fmt.Errorf("%w: %v", ErrExportFailed, err)
	}
	e.Logger.Infof("report written to %s (%d bytes)", path, len(doc.Data))
	return path, nil
}

// fileName applies the naming policy: fixed names overwrite the previous
// export, versioned names never collide.
func (e *Exporter) fileName(at time.Time) string {
	name := e.Settings.FileName
	if name == "" {
		name = config.Default().Report.FileName
	}
	if !strings.EqualFold(e.Settings.ExportNaming, config.ExportNamingVersioned) {
		return name
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	id := e.newID()
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("%s_%s_%s%s", base, dateutil.FormatFileStamp(at), id, ext)
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".report-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
