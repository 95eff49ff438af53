package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hazza/property-roi/internal/api"
	"github.com/spf13/cobra"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadSettings()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.API.Addr = addr
			}
			logger := newLogger(cmd, cfg)
			srv := api.NewServer(cfg, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				logger.Infof("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides settings)")
	return cmd
}
