package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/iwvelando/premium-estimator/internal/logging"
	"github.com/iwvelando/premium-estimator/internal/server"
	"github.com/iwvelando/premium-estimator/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type serveOptions struct {
	serverConfig   string
	address        string
	maxRequestSize string
}

func newServeCmd(root *rootOptions) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the estimator web UI and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := server.LoadConfig(opts.serverConfig)
			if err != nil {
				return err
			}
			if opts.address != "" {
				cfg.Address = opts.address
			}
			if opts.maxRequestSize != "" {
				size, err := server.ParseSize(opts.maxRequestSize)
				if err != nil {
					return err
				}
				cfg.SetRequestSizeBytes(size)
			}

			logger, err := logging.NewLogger(cfg.Logging, root.logLevel)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			defer func() {
				_ = logger.Sync()
			}()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := server.Run(ctx, logger, cfg, version); err != nil {
				logger.Error("web server stopped with error",
					zap.String("op", "main.serve"),
					zap.Error(err),
				)
				return err
			}
			logger.Info("web server exited", zap.String("op", "main.serve"))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.serverConfig, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	flags.StringVar(&opts.address, "address", "", "listen address override, e.g. :8080")
	flags.StringVar(&opts.maxRequestSize, "max-request-size", "", "request body limit override, e.g. 64K")

	return cmd
}
