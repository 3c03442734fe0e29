package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/unshorts/internal/config"
	"github.com/runnerr0/unshorts/internal/history"
)

// statusJSON is the JSON output structure for the status command.
type statusJSON struct {
	Version        string `json:"version"`
	HistoryPath    string `json:"history_path"`
	TotalRecords   int    `json:"total_records"`
	ShortsRecords  int    `json:"shorts_records"`
	RegularRecords int    `json:"regular_records"`
	OldestDate     string `json:"oldest_date,omitempty"`
	NewestDate     string `json:"newest_date,omitempty"`
	KeepForever    bool   `json:"keep_forever"`
	RetentionDays  int    `json:"retention_days"`
	PollInterval   int    `json:"poll_interval_seconds"`
}

// Execute implements the go-flags Commander interface for StatusCommand.
func (c *StatusCommand) Execute(args []string) error {
	store, cfg, err := openStore(c.globals)
	if err != nil {
		return err
	}

	return c.executeWithStore(store, cfg)
}

// executeWithStore runs status against a provided store and config (for testing).
func (c *StatusCommand) executeWithStore(store *history.FileStore, cfg *config.Config) error {
	records := store.Records()

	shorts, regular := 0, 0
	oldest, newest := "", ""
	for _, r := range records {
		switch r.Type {
		case history.TypeShorts:
			shorts++
		case history.TypeRegular:
			regular++
		}
		if r.Date == "" {
			continue
		}
		if oldest == "" || r.Date < oldest {
			oldest = r.Date
		}
		if newest == "" || r.Date > newest {
			newest = r.Date
		}
	}

	if c.globals != nil && c.globals.JSON {
		out := statusJSON{
			Version:        c.version,
			HistoryPath:    store.Path(),
			TotalRecords:   len(records),
			ShortsRecords:  shorts,
			RegularRecords: regular,
			OldestDate:     oldest,
			NewestDate:     newest,
			KeepForever:    cfg.Retention.KeepForever,
			RetentionDays:  cfg.Retention.Days,
			PollInterval:   cfg.Watcher.PollIntervalSeconds,
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Println("unshorts Status")
	fmt.Println("===============")
	fmt.Printf("Version:       %s\n", c.version)
	fmt.Printf("History:       %s\n", store.Path())
	fmt.Printf("Records:       %d (%d shorts, %d regular)\n", len(records), shorts, regular)
	if oldest != "" {
		fmt.Printf("Oldest:        %s\n", oldest)
		fmt.Printf("Newest:        %s\n", newest)
	}
	if cfg.Retention.KeepForever {
		fmt.Println("Retention:     keep forever")
	} else {
		fmt.Printf("Retention:     %d days (applied by prune)\n", cfg.Retention.Days)
	}
	fmt.Printf("Poll interval: %ds\n", cfg.Watcher.PollIntervalSeconds)

	return nil
}
