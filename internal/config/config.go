package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default config file path.
const DefaultConfigPath = "~/.config/unshorts/config.yaml"

// Config holds all unshorts configuration.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Watcher   WatcherConfig   `yaml:"watcher"`
	Fetcher   FetcherConfig   `yaml:"fetcher"`
	Retention RetentionConfig `yaml:"retention"`
	Startup   StartupConfig   `yaml:"startup"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type StorageConfig struct {
	Path        string `yaml:"path"`
	HistoryFile string `yaml:"history_file"`
	StatsFile   string `yaml:"stats_file"`
}

type WatcherConfig struct {
	PollIntervalSeconds int `yaml:"poll_interval_seconds"`
}

type FetcherConfig struct {
	TimeoutSeconds    int    `yaml:"timeout_seconds"`
	UserAgent         string `yaml:"user_agent"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
}

// RetentionConfig is a stored preference. Nothing applies it automatically;
// the prune subcommand reads Days when KeepForever is false.
type RetentionConfig struct {
	KeepForever bool `yaml:"keep_forever"`
	Days        int  `yaml:"days"`
}

// StartupConfig holds desktop launch preferences. They are persisted for
// external launchers to consume; the core logic never reads them.
type StartupConfig struct {
	StartMinimized bool `yaml:"start_minimized"`
	StartOnLogin   bool `yaml:"start_on_login"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// LoadOrCreate loads the config from the default path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreate() (*Config, error) {
	path, err := expandPath(DefaultConfigPath)
	if err != nil {
		return nil, err
	}
	return LoadOrCreateAt(path)
}

// LoadOrCreateAt loads the config from the given path. If the file does
// not exist, it creates the directory structure and writes defaults.
func LoadOrCreateAt(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultConfig()

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating config directory: %w", err)
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("marshaling default config: %w", err)
		}

		if err := os.WriteFile(path, data, 0644); err != nil {
			return nil, fmt.Errorf("writing default config: %w", err)
		}

		return cfg, nil
	}

	return Load(path)
}

// HistoryPath resolves the full path of the history file.
func (c *Config) HistoryPath() (string, error) {
	dir, err := expandPath(c.Storage.Path)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Storage.HistoryFile), nil
}

// StatsPath resolves the full path of the stats file.
func (c *Config) StatsPath() (string, error) {
	dir, err := expandPath(c.Storage.Path)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, c.Storage.StatsFile), nil
}
