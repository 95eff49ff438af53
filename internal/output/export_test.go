package output

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hazza/property-roi/internal/calculation"
	"github.com/hazza/property-roi/internal/config"
	"github.com/hazza/property-roi/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExporter(t *testing.T, naming string) *Exporter {
	t.Helper()
	s := config.Default().Report
	s.OutputDir = t.TempDir()
	s.ExportNaming = naming
	e := NewExporter(s)
	e.now = func() time.Time { return time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC) }
	e.newID = func() string { return "0f8fad5b-d9cb-469f-a165-70867728950e" }
	return e
}

func exportAssessment() domain.ReturnAssessment {
	return calculation.Compute(domain.PropertyInputs{
		PropertyPrice:        2000000,
		AreaSqft:             1700,
		MonthlyRent:          8500,
		ServiceFeePerSqft:    20,
		MaintenanceCost:      10000,
		ManagementFeePercent: 5,
	})
}

func TestExporter_Render(t *testing.T) {
	e := testExporter(t, config.ExportNamingFixed)
	doc, err := e.Render(exportAssessment())
	require.NoError(t, err)

	assert.Equal(t, "Hazza_Property_Report.pdf", doc.FileName)
	assert.Equal(t, "application/pdf", doc.MIMEType)
	assert.True(t, strings.HasPrefix(string(doc.Data), "%PDF-"))
	require.NotNil(t, doc.Report)
	assert.Equal(t, domain.RatingLow, doc.Report.Verdict.Rating)
}

func TestExporter_FixedNamingOverwrites(t *testing.T) {
	e := testExporter(t, config.ExportNamingFixed)

	first, err := e.Export(exportAssessment())
	require.NoError(t, err)
	second, err := e.Export(exportAssessment())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, filepath.Join(e.Settings.OutputDir, "Hazza_Property_Report.pdf"), first)

	entries, err := os.ReadDir(e.Settings.OutputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestExporter_VersionedNaming(t *testing.T) {
	e := testExporter(t, config.ExportNamingVersioned)

	path, err := e.Export(exportAssessment())
	require.NoError(t, err)
	assert.Equal(t, "Hazza_Property_Report_20240517_093000_0f8fad5b.pdf", filepath.Base(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExporter_VersionedNamesDiffer(t *testing.T) {
	s := config.Default().Report
	s.OutputDir = t.TempDir()
	s.ExportNaming = config.ExportNamingVersioned
	e := NewExporter(s)

	a, err := e.Export(exportAssessment())
	require.NoError(t, err)
	b, err := e.Export(exportAssessment())
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestExporter_WriteFailure(t *testing.T) {
	e := testExporter(t, config.ExportNamingFixed)
	e.Settings.OutputDir = filepath.Join(e.Settings.OutputDir, "missing", "dir")

	path, err := e.Export(exportAssessment())
	assert.Empty(t, path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExportFailed))
}

func TestExporter_FormatFailure(t *testing.T) {
	e := testExporter(t, config.ExportNamingFixed)
	e.Formatter = FormatterFunc{ID: "broken", F: func(*domain.Report) ([]byte, error) {
		return nil, errors.New("boom")
	}}

	_, err := e.Render(exportAssessment())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExportFailed))
	assert.Contains(t, err.Error(), "boom")
}

func TestExporter_EmptyFileNameFallsBack(t *testing.T) {
	e := testExporter(t, config.ExportNamingFixed)
	e.Settings.FileName = ""
	doc, err := e.Render(exportAssessment())
	require.NoError(t, err)
	assert.Equal(t, "Hazza_Property_Report.pdf", doc.FileName)
}
