package main

import (
	"fmt"
	"log"

	"github.com/hazza/property-roi/internal/calculation"
	"github.com/hazza/property-roi/internal/config"
	"github.com/hazza/property-roi/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalOptions are shared by every subcommand.
type globalOptions struct {
	settingsFile string
	verbose      bool
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "propertyroi",
		Short:         "Property cash return calculator with report export",
		Long:          "Computes the annual net income and return on investment of a cash-purchased property\nand renders the result as a console summary or an exported PDF report.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.settingsFile, "config", "", "settings YAML file (report, api, log_level)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newCalculateCmd(opts),
		newExportCmd(opts),
		newServeCmd(opts),
		newExampleConfigCmd(),
	)
	return root
}

// loadSettings builds the process-wide settings once per invocation.
func (o *globalOptions) loadSettings() (config.Settings, error) {
	cfg := config.Default()
	if o.settingsFile != "" {
		loaded, err := config.LoadFile(o.settingsFile)
		if err != nil {
			return cfg, fmt.Errorf("failed to load settings %s: %w", o.settingsFile, err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if o.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command, cfg config.Settings) calculation.Logger {
	return calculation.NewStdLogger(log.New(cmd.ErrOrStderr(), "propertyroi: ", log.LstdFlags), cfg.DebugEnabled())
}

// inputFlags mirrors the seven form fields.
type inputFlags struct {
	file   string
	values domain.PropertyInputs
}

func (f *inputFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.file, "input", "i", "", "property inputs YAML file")
	fs.Float64Var(&f.values.PropertyPrice, "price", 0, "total property price")
	fs.Float64Var(&f.values.AreaSqft, "area", 0, "property area (sq ft)")
	fs.Float64Var(&f.values.MonthlyRent, "monthly-rent", 0, "monthly rent")
	fs.Float64Var(&f.values.AnnualRentOverride, "annual-rent", 0, "annual rent; 0 uses monthly rent × 12")
	fs.Float64Var(&f.values.ServiceFeePerSqft, "service-fee", 0, "service fee per sq ft")
	fs.Float64Var(&f.values.MaintenanceCost, "maintenance", 0, "annual maintenance cost")
	fs.Float64Var(&f.values.ManagementFeePercent, "management-pct", 0, "property management fee (%)")
}

// resolve starts from the defaults (or the input file) and applies only the
// flags the user actually set.
func (f *inputFlags) resolve(fs *pflag.FlagSet) (domain.PropertyInputs, error) {
	parser := config.NewInputParser()
	in := parser.CreateExampleInputs()
	if f.file != "" {
		loaded, err := parser.LoadFromFile(f.file)
		if err != nil {
			return domain.PropertyInputs{}, err
		}
		in = loaded
	}

	overrides := []struct {
		flag string
		dst  *float64
		val  float64
	}{
		{"price", &in.PropertyPrice, f.values.PropertyPrice},
		{"area", &in.AreaSqft, f.values.AreaSqft},
		{"monthly-rent", &in.MonthlyRent, f.values.MonthlyRent},
		{"annual-rent", &in.AnnualRentOverride, f.values.AnnualRentOverride},
		{"service-fee", &in.ServiceFeePerSqft, f.values.ServiceFeePerSqft},
		{"maintenance", &in.MaintenanceCost, f.values.MaintenanceCost},
		{"management-pct", &in.ManagementFeePercent, f.values.ManagementFeePercent},
	}
	for _, o := range overrides {
		if fs.Changed(o.flag) {
			*o.dst = o.val
		}
	}

	if err := parser.ValidateInputs(in); err != nil {
		return domain.PropertyInputs{}, err
	}
	return *in, nil
}
