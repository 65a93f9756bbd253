package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the CLI's configuration.
type Config struct {
	DatabaseURL    string
	HistoryEnabled bool
	Debug          bool
	MaxFileBytes   int64
}

// Load reads configuration from the environment, after loading a .env file
// if one is present. Missing values fall back to defaults.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:    os.Getenv("CODETRANS_DB"),
		HistoryEnabled: true,
		MaxFileBytes:   5 * 1024 * 1024,
	}

	if cfg.DatabaseURL == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.DatabaseURL = filepath.Join(home, ".code-translator", "history.db")
	}

	if v := os.Getenv("CODETRANS_HISTORY"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.HistoryEnabled = enabled
		}
	}
	if v := os.Getenv("CODETRANS_DEBUG"); v != "" {
		if debug, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = debug
		}
	}
	if v := os.Getenv("CODETRANS_MAX_FILE_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxFileBytes = n
		}
	}

	return cfg
}
