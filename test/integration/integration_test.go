package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hazza/property-roi/internal/calculation"
	"github.com/hazza/property-roi/internal/config"
	"github.com/hazza/property-roi/internal/domain"
	"github.com/hazza/property-roi/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	inputs, err := parser.LoadFromFile("../testdata/scenario_b.yaml")
	require.NoError(t, err)

	engine := calculation.NewCalculator()
	a := engine.Assess(*inputs)

	assert.Equal(t, 180000.0, a.AnnualRent)
	assert.Equal(t, 34000.0, a.ServiceFeeTotal)
	assert.InDelta(t, 9000.0, a.ManagementFee, 1e-9)
	assert.InDelta(t, 127000.0, a.NetIncome, 1e-9)
	assert.InDelta(t, 6.35, a.ROI, 1e-9)
	assert.Equal(t, domain.RatingGood, a.Rating)
}

func TestOutputGeneration(t *testing.T) {
	calculation.SetNowFunc(func() time.Time { return time.Date(2025, 2, 3, 4, 5, 6, 0, time.UTC) })
	defer calculation.SetNowFunc(nil)

	inputs, err := config.NewInputParser().LoadFromFile("../testdata/scenario_b.yaml")
	require.NoError(t, err)
	a := calculation.Compute(*inputs)

	settings := config.Default()
	settings.Report.OutputDir = t.TempDir()
	report := output.BuildReport(a, settings.Report, calculation.Now())

	for _, name := range output.AvailableFormatterNames() {
		f, err := output.ResolveFormatter(name)
		require.NoError(t, err)
		path, err := output.WriteFormatted(f, report, settings.Report.OutputDir, report.GeneratedAt)
		require.NoError(t, err, name)
		assert.Equal(t, "property_report_20250203_040506."+output.ExtensionFor(name), filepath.Base(path))
	}

	exporter := output.NewExporter(settings.Report)
	path, err := exporter.Export(a)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-", string(data[:5]))
}
