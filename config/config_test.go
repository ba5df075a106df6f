package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "airline.db", cfg.Database.Path)
	assert.True(t, cfg.Database.SeedSample)
	assert.True(t, cfg.UI.Color)
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("database:\n  path: /tmp/test.db\n  seed_sample_flights: false\nui:\n  color: false\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.False(t, cfg.Database.SeedSample)
	assert.False(t, cfg.UI.Color)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("AIRLINE_DB_PATH", "/tmp/env.db")
	t.Setenv("AIRLINE_SEED_SAMPLE", "false")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/tmp/env.db", cfg.Database.Path)
	assert.False(t, cfg.Database.SeedSample)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: ["), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}
