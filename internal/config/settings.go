package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Export naming policies for generated documents.
const (
	ExportNamingFixed     = "fixed"
	ExportNamingVersioned = "versioned"
)

// Settings is the process-wide configuration. Build it once at startup and
// pass it by value; nothing mutates it afterwards.
type Settings struct {
	LogLevel string         `yaml:"log_level"`
	Report   ReportSettings `yaml:"report"`
	API      APISettings    `yaml:"api"`
}

type ReportSettings struct {
	Title        string `yaml:"title"`
	Currency     string `yaml:"currency"`
	AreaUnit     string `yaml:"area_unit"`
	FileName     string `yaml:"file_name"`
	ExportNaming string `yaml:"export_naming"`
	OutputDir    string `yaml:"output_dir"`
}

type APISettings struct {
	Addr string `yaml:"addr"`
}

func Default() Settings {
	return Settings{
		LogLevel: "info",
		Report: ReportSettings{
			Title:        "Hazza Accounting Services - Property Return Report",
			Currency:     "AED",
			AreaUnit:     "sq ft",
			FileName:     "Hazza_Property_Report.pdf",
			ExportNaming: ExportNamingFixed,
			OutputDir:    ".",
		},
		API: APISettings{
			Addr: ":8080",
		},
	}
}

// LoadFile reads settings from path on top of Default().
func LoadFile(path string) (Settings, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment.
func (s *Settings) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("PROPERTY_ROI_ADDR")); v != "" {
		s.API.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("PROPERTY_ROI_OUTPUT_DIR")); v != "" {
		s.Report.OutputDir = v
	}
	if v := strings.TrimSpace(os.Getenv("PROPERTY_ROI_CURRENCY")); v != "" {
		s.Report.Currency = v
	}
	if v := strings.TrimSpace(os.Getenv("PROPERTY_ROI_LOG_LEVEL")); v != "" {
		s.LogLevel = v
	}
}

// DebugEnabled reports whether debug logging was requested.
func (s Settings) DebugEnabled() bool {
	return strings.EqualFold(strings.TrimSpace(s.LogLevel), "debug")
}
