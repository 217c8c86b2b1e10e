// Package cli provides common CLI initialization utilities shared by the
// geekhours subcommands: logging, environment loading, configuration and
// store setup.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"geekhours/internal/config"
	applog "geekhours/internal/log"
	"geekhours/internal/storage"
)

// SetupLogger initializes structured logging at the given level and sets it
// as the default logger.
func SetupLogger(level string) *applog.Logger {
	cfg := applog.DefaultConfig()
	cfg.Level = applog.ParseLevel(level)
	logger := applog.New(cfg)
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// InitStore opens the record store at the given path.
// Returns the store or exits the process on failure.
func InitStore(logger *applog.Logger, dbPath string) *storage.Store {
	store, err := storage.Open(dbPath)
	if err != nil {
		logger.Error("Failed to open record store", "error", err, "path", dbPath)
		os.Exit(1)
	}
	return store
}
