package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "Hazza_Property_Report.pdf", cfg.Report.FileName)
	assert.Equal(t, ExportNamingFixed, cfg.Report.ExportNaming)
	assert.Equal(t, "AED", cfg.Report.Currency)
	assert.False(t, cfg.DebugEnabled())
}

func TestLoadFile_OverlaysDefaults(t *testing.T) {
	path := writeTemp(t, "settings.yaml", "log_level: debug\nreport:\n  currency: USD\n  export_naming: versioned\n")

	cfg, err := LoadFile(path)

	require.NoError(t, err)
	assert.Equal(t, "USD", cfg.Report.Currency)
	assert.Equal(t, ExportNamingVersioned, cfg.Report.ExportNaming)
	assert.Equal(t, "sq ft", cfg.Report.AreaUnit)
	assert.Equal(t, ":8080", cfg.API.Addr)
	assert.True(t, cfg.DebugEnabled())
}

func TestLoadFile_Missing(t *testing.T) {
	cfg, err := LoadFile("does-not-exist.yaml")
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PROPERTY_ROI_ADDR", "127.0.0.1:9000")
	t.Setenv("PROPERTY_ROI_OUTPUT_DIR", "/tmp/reports")
	t.Setenv("PROPERTY_ROI_CURRENCY", " SAR ")
	t.Setenv("PROPERTY_ROI_LOG_LEVEL", "")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "127.0.0.1:9000", cfg.API.Addr)
	assert.Equal(t, "/tmp/reports", cfg.Report.OutputDir)
	assert.Equal(t, "SAR", cfg.Report.Currency)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Settings)
		wantErr string
	}{
		{"bad log level", func(s *Settings) { s.LogLevel = "trace" }, "log_level"},
		{"bad naming", func(s *Settings) { s.Report.ExportNaming = "random" }, "report.export_naming"},
		{"empty file name", func(s *Settings) { s.Report.FileName = " " }, "report.file_name is required"},
		{"file name with dir", func(s *Settings) { s.Report.FileName = "out/report.pdf" }, "must not contain a directory"},
		{"wrong extension", func(s *Settings) { s.Report.FileName = "report.txt" }, "must end in .pdf"},
		{"empty addr", func(s *Settings) { s.API.Addr = "" }, "api.addr is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
