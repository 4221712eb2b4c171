package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ragstack/textchunk/chunker"
	"github.com/ragstack/textchunk/documentloaders"
	"github.com/ragstack/textchunk/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the chunking HTTP service",
	Long: `Start the HTTP API. The service exposes the chunking strategies over
/api/v1 and batch-chunks the configured data directory on demand.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}

		registry, err := chunker.RegisterStrategies(logger)
		if err != nil {
			return err
		}

		loader := documentloaders.NewDir(cfg.DataDir, documentloaders.WithLogger(logger))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		srv := server.New(cfg, registry, loader, logger)
		return srv.Run(ctx)
	},
}
