// Package config loads the service configuration from an optional
// YAML file, with environment variable overrides for deployment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level service configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	DataDir  string         `yaml:"data_dir"`
	LogLevel string         `yaml:"log_level"`
	Chunking ChunkingConfig `yaml:"chunking"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// ChunkingConfig holds the default chunking parameters applied when a
// request or CLI invocation leaves them unset.
type ChunkingConfig struct {
	Strategy  string `yaml:"strategy"`
	ChunkSize int    `yaml:"chunk_size"`
	Overlap   int    `yaml:"overlap"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		Server:   ServerConfig{Addr: ":8080"},
		DataDir:  "data",
		LogLevel: "info",
		Chunking: ChunkingConfig{
			Strategy:  "paragraph",
			ChunkSize: 1000,
			Overlap:   200,
		},
	}
}

// Load reads the configuration file at path, if any, applies
// environment overrides, and validates the result. An empty path
// yields the defaults plus environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Environment overrides, highest precedence.
func (c *Config) applyEnv() {
	if v := os.Getenv("TEXTCHUNK_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("TEXTCHUNK_DATA_DIR"); v != "" {
		c.DataDir = v
	}
	if v := os.Getenv("TEXTCHUNK_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate checks the configuration for values that can never work.
func (c Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server addr must not be empty")
	}
	if c.Chunking.ChunkSize <= 0 {
		return fmt.Errorf("chunking chunk_size must be positive, got %d", c.Chunking.ChunkSize)
	}
	if c.Chunking.Overlap < 0 {
		return fmt.Errorf("chunking overlap cannot be negative, got %d", c.Chunking.Overlap)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// SlogLevel maps the configured log level onto slog.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
