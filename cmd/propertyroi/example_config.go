package main

import (
	"fmt"
	"os"

	"github.com/hazza/property-roi/internal/config"
	"github.com/spf13/cobra"
)

func newExampleConfigCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write the default property inputs as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "inputs.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.SaveInputs(config.NewInputParser().CreateExampleInputs(), path); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example inputs written to %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
