package config

// DefaultConfig returns a Config populated with all default values.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path:        "~/.config/unshorts",
			HistoryFile: "history.json",
			StatsFile:   "stats.json",
		},
		Watcher: WatcherConfig{
			PollIntervalSeconds: 1,
		},
		Fetcher: FetcherConfig{
			TimeoutSeconds:    10,
			UserAgent:         "Mozilla/5.0",
			RequestsPerMinute: 30,
		},
		Retention: RetentionConfig{
			KeepForever: true,
			Days:        30,
		},
		Startup: StartupConfig{
			StartMinimized: false,
			StartOnLogin:   false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
