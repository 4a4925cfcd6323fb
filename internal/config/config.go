// Package config resolves defaults, an optional .env file and environment
// variables into a Config.
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvDataDir  = "IPLMETRICS_DATA_DIR"
	EnvDB       = "IPLMETRICS_DB"
	EnvLogLevel = "IPLMETRICS_LOG_LEVEL"
	EnvAPIKey   = "ANTHROPIC_API_KEY"
	EnvModel    = "IPLMETRICS_ANALYZE_MODEL"
)

// DefaultModel is the model used by `analyze` unless overridden.
const DefaultModel = "claude-haiku-4-5-20251001"

// Load reads .env (when present) and the environment. Unset variables fall
// back to defaults under ~/.iplmetrics; nothing is required.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found, reading from environment variables")
	}
	return FromEnv(HomeDir())
}

// FromEnv builds a Config from the current environment, with defaults rooted
// at home.
func FromEnv(home string) Config {
	base := filepath.Join(home, ".iplmetrics")
	getEnv := func(key, fallback string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return fallback
	}
	return Config{
		DataDir:  getEnv(EnvDataDir, filepath.Join(base, "data")),
		DBPath:   getEnv(EnvDB, filepath.Join(base, "ipl.db")),
		LogLevel: getEnv(EnvLogLevel, "info"),
		Analyze: AnalyzeConfig{
			APIKey: getEnv(EnvAPIKey, ""),
			Model:  getEnv(EnvModel, DefaultModel),
		},
	}
}

// HomeDir returns the user's home directory, or "." when it cannot be found.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// ApplyLogLevel sets the global logger level, keeping the current level
// when name is not a known level.
func ApplyLogLevel(name string) {
	lvl, err := log.ParseLevel(name)
	if err != nil {
		log.Warn("unknown log level, keeping default", "level", name)
		return
	}
	log.SetLevel(lvl)
}
