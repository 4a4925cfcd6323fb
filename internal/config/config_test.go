package config

import (
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{EnvDataDir, EnvDB, EnvLogLevel, EnvAPIKey, EnvModel} {
		t.Setenv(k, "")
	}

	cfg := FromEnv("/home/fan")
	assert.Equal(t, filepath.Join("/home/fan", ".iplmetrics", "data"), cfg.DataDir)
	assert.Equal(t, filepath.Join("/home/fan", ".iplmetrics", "ipl.db"), cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.Analyze.APIKey)
	assert.Equal(t, DefaultModel, cfg.Analyze.Model)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv(EnvDataDir, "/data/ipl")
	t.Setenv(EnvDB, "/tmp/ipl.db")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvAPIKey, "sk-test")

	cfg := FromEnv("/home/fan")
	assert.Equal(t, "/data/ipl", cfg.DataDir)
	assert.Equal(t, "/tmp/ipl.db", cfg.DBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "sk-test", cfg.Analyze.APIKey)
}

func TestApplyLogLevel(t *testing.T) {
	orig := log.GetLevel()
	t.Cleanup(func() { log.SetLevel(orig) })

	ApplyLogLevel("debug")
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	ApplyLogLevel("loud")
	assert.Equal(t, log.DebugLevel, log.GetLevel(), "unknown level is ignored")
}
