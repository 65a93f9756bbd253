package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CODETRANS_DB", "CODETRANS_HISTORY", "CODETRANS_DEBUG", "CODETRANS_MAX_FILE_BYTES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg := Load()
	assert.True(t, strings.HasSuffix(cfg.DatabaseURL, "history.db"))
	assert.Contains(t, cfg.DatabaseURL, ".code-translator")
	assert.True(t, cfg.HistoryEnabled)
	assert.False(t, cfg.Debug)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxFileBytes)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CODETRANS_DB", "/tmp/custom.db")
	t.Setenv("CODETRANS_HISTORY", "false")
	t.Setenv("CODETRANS_DEBUG", "true")
	t.Setenv("CODETRANS_MAX_FILE_BYTES", "1024")

	cfg := Load()
	assert.Equal(t, "/tmp/custom.db", cfg.DatabaseURL)
	assert.False(t, cfg.HistoryEnabled)
	assert.True(t, cfg.Debug)
	assert.Equal(t, int64(1024), cfg.MaxFileBytes)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("CODETRANS_HISTORY", "maybe")
	t.Setenv("CODETRANS_MAX_FILE_BYTES", "-5")

	cfg := Load()
	assert.True(t, cfg.HistoryEnabled)
	assert.Equal(t, int64(5*1024*1024), cfg.MaxFileBytes)
}
