package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ragstack/textchunk/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "textchunk",
	Short: "Split documents into retrieval-sized chunks",
	Long: `textchunk splits text documents into chunks suitable for embedding
and retrieval. It ships several strategies (fixed, paragraph, sentence,
sliding_window, hybrid, sentence_window) and can run either as a one-shot
CLI over files or stdin, or as an HTTP service over a data directory.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(splitCmd)
}

// loadConfig resolves the effective configuration and builds the
// process logger from its log level.
func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return config.Config{}, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	return cfg, logger, nil
}
