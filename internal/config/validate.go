package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Validate checks settings that would otherwise fail late, at export time.
func (s Settings) Validate() error {
	level := strings.ToLower(strings.TrimSpace(s.LogLevel))
	switch level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug|info|warn|error, got %q", s.LogLevel)
	}

	naming := strings.ToLower(strings.TrimSpace(s.Report.ExportNaming))
	if naming != ExportNamingFixed && naming != ExportNamingVersioned {
		return fmt.Errorf("report.export_naming must be %q or %q, got %q", ExportNamingFixed, ExportNamingVersioned, s.Report.ExportNaming)
	}

	name := strings.TrimSpace(s.Report.FileName)
	if name == "" {
		return fmt.Errorf("report.file_name is required")
	}
	if filepath.Base(name) != name {
		return fmt.Errorf("report.file_name must not contain a directory, got %q", s.Report.FileName)
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return fmt.Errorf("report.file_name must end in .pdf, got %q", s.Report.FileName)
	}

	if strings.TrimSpace(s.API.Addr) == "" {
		return fmt.Errorf("api.addr is required")
	}
	return nil
}
