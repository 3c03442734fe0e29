package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "~/.config/unshorts", cfg.Storage.Path)
	assert.Equal(t, "history.json", cfg.Storage.HistoryFile)
	assert.Equal(t, "stats.json", cfg.Storage.StatsFile)
	assert.Equal(t, 1, cfg.Watcher.PollIntervalSeconds)
	assert.Equal(t, 10, cfg.Fetcher.TimeoutSeconds)
	assert.Equal(t, "Mozilla/5.0", cfg.Fetcher.UserAgent)
	assert.Equal(t, 30, cfg.Fetcher.RequestsPerMinute)
	assert.True(t, cfg.Retention.KeepForever)
	assert.Equal(t, 30, cfg.Retention.Days)
	assert.False(t, cfg.Startup.StartMinimized)
	assert.False(t, cfg.Startup.StartOnLogin)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadValidYAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yamlContent := `
watcher:
  poll_interval_seconds: 5
fetcher:
  timeout_seconds: 3
retention:
  keep_forever: false
  days: 90
logging:
  level: "debug"
`
	err := os.WriteFile(cfgPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	// Overridden values
	assert.Equal(t, 5, cfg.Watcher.PollIntervalSeconds)
	assert.Equal(t, 3, cfg.Fetcher.TimeoutSeconds)
	assert.False(t, cfg.Retention.KeepForever)
	assert.Equal(t, 90, cfg.Retention.Days)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Non-overridden values remain defaults
	assert.Equal(t, "~/.config/unshorts", cfg.Storage.Path)
	assert.Equal(t, "Mozilla/5.0", cfg.Fetcher.UserAgent)
	assert.Equal(t, 30, cfg.Fetcher.RequestsPerMinute)
}

func TestLoadInvalidYAMLReturnsError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	err := os.WriteFile(cfgPath, []byte(":::not valid yaml{{{"), 0644)
	require.NoError(t, err)

	_, err = Load(cfgPath)
	assert.Error(t, err)
}

func TestLoadNonExistentFileReturnsError(t *testing.T) {
	_, err := Load("/tmp/nonexistent_path_12345/config.yaml")
	assert.Error(t, err)
}

func TestLoadOrCreateCreatesDefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "deep", "config.yaml")

	cfg, err := LoadOrCreateAt(cfgPath)
	require.NoError(t, err)

	// Should return defaults
	assert.Equal(t, 1, cfg.Watcher.PollIntervalSeconds)
	assert.Equal(t, "history.json", cfg.Storage.HistoryFile)

	// File should now exist on disk
	_, statErr := os.Stat(cfgPath)
	assert.NoError(t, statErr)

	// File should be valid YAML loadable again
	cfg2, err := Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.Watcher.PollIntervalSeconds, cfg2.Watcher.PollIntervalSeconds)
}

func TestLoadOrCreateLoadsExistingFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	yamlContent := `
retention:
  days: 7
`
	err := os.WriteFile(cfgPath, []byte(yamlContent), 0644)
	require.NoError(t, err)

	cfg, err := LoadOrCreateAt(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Retention.Days)
	// Other fields remain defaults
	assert.Equal(t, "history.json", cfg.Storage.HistoryFile)
}

func TestHistoryAndStatsPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Path = "/var/lib/unshorts"

	historyPath, err := cfg.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/var/lib/unshorts", "history.json"), historyPath)

	statsPath, err := cfg.StatsPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/var/lib/unshorts", "stats.json"), statsPath)
}

func TestPathsExpandTilde(t *testing.T) {
	cfg := DefaultConfig()

	historyPath, err := cfg.HistoryPath()
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "unshorts", "history.json"), historyPath)
}
