package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/runnerr0/unshorts/internal/config"
	"github.com/runnerr0/unshorts/internal/history"
	"github.com/runnerr0/unshorts/internal/stats"
)

// loadConfig resolves the config from --config or the default location,
// creating the default file on first use.
func loadConfig(globals *GlobalFlags) (*config.Config, error) {
	if globals != nil && globals.Config != "" {
		return config.LoadOrCreateAt(globals.Config)
	}
	return config.LoadOrCreate()
}

// openStore loads the config and the history store it points at.
func openStore(globals *GlobalFlags) (*history.FileStore, *config.Config, error) {
	cfg, err := loadConfig(globals)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	historyPath, err := cfg.HistoryPath()
	if err != nil {
		return nil, nil, err
	}

	store := history.NewFileStore(historyPath)
	if err := store.Load(); err != nil {
		return nil, nil, fmt.Errorf("load history: %w", err)
	}

	return store, cfg, nil
}

// persistAll rewrites the history file and refreshes the stats file. Stats
// are recomputed from scratch after every mutation.
func persistAll(store *history.FileStore, statsPath string) error {
	if err := store.Persist(); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	if err := stats.WriteFile(statsPath, store.Records()); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}

// parseDuration parses a human-friendly duration string like "30d", "7d", "24h", "2w".
func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, fmt.Errorf("invalid duration: empty string")
	}

	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration: %q", s)
	}

	suffix := s[len(s)-1]
	numStr := s[:len(s)-1]

	n, err := strconv.Atoi(numStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration: %q", s)
	}

	switch suffix {
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'w':
		return time.Duration(n) * 7 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("invalid duration: %q (use d, h, or w suffix)", s)
	}
}

// formatDurationHuman formats a duration into a human-readable string like "30 days".
func formatDurationHuman(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days > 0 {
		if days == 1 {
			return "1 day"
		}
		return fmt.Sprintf("%d days", days)
	}
	hours := int(d.Hours())
	if hours > 0 {
		if hours == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", hours)
	}
	return d.String()
}
