package main

import (
	"fmt"

	"github.com/hazza/property-roi/internal/calculation"
	"github.com/hazza/property-roi/internal/output"
	"github.com/spf13/cobra"
)

func newCalculateCmd(opts *globalOptions) *cobra.Command {
	flags := &inputFlags{}
	var (
		format string
		save   bool
		export bool
	)
	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Compute the return and print the summary",
		Example: "  propertyroi calculate --price 2000000 --monthly-rent 15000\n" +
			"  propertyroi calculate -i inputs.yaml --format json --export",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadSettings()
			if err != nil {
				return err
			}
			logger := newLogger(cmd, cfg)

			f, err := output.ResolveFormatter(format)
			if err != nil {
				return err
			}
			in, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}

			calc := calculation.NewCalculator()
			calc.SetLogger(logger)
			a := calc.Assess(in)

			at := calculation.Now()
			report := output.BuildReport(a, cfg.Report, at)
			data, err := f.Format(report)
			if err != nil {
				return fmt.Errorf("format %s: %w", f.Name(), err)
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}

			if save {
				path, err := output.WriteFormatted(f, report, cfg.Report.OutputDir, at)
				if err != nil {
					return fmt.Errorf("save %s output: %w", f.Name(), err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s output to %s\n", f.Name(), path)
			}

			// A failed export never hides the result already printed above.
			if export {
				exporter := output.NewExporter(cfg.Report)
				exporter.Logger = logger
				path, err := exporter.Export(a)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not export the PDF report: %v\n", err)
					return nil
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "PDF report written to %s\n", path)
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format: console, json, csv, html, pdf")
	cmd.Flags().BoolVar(&save, "save", false, "also save the formatted output to a timestamped file")
	cmd.Flags().BoolVar(&export, "export", false, "also export the PDF report")
	return cmd
}

func newExportCmd(opts *globalOptions) *cobra.Command {
	flags := &inputFlags{}
	var outputDir string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Compute the return and write the PDF report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadSettings()
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.Report.OutputDir = outputDir
			}
			logger := newLogger(cmd, cfg)

			in, err := flags.resolve(cmd.Flags())
			if err != nil {
				return err
			}
			calc := calculation.NewCalculator()
			calc.SetLogger(logger)

			exporter := output.NewExporter(cfg.Report)
			exporter.Logger = logger
			path, err := exporter.Export(calc.Assess(in))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for the report (overrides settings)")
	return cmd
}
