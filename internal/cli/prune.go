package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/runnerr0/unshorts/internal/history"
)

// Execute implements the go-flags Commander interface for PruneCommand.
// Retention is never applied automatically; this command is the only place
// the configured cutoff takes effect.
func (c *PruneCommand) Execute(args []string) error {
	store, cfg, err := openStore(c.globals)
	if err != nil {
		return err
	}
	statsPath, err := cfg.StatsPath()
	if err != nil {
		return err
	}

	retention := time.Duration(cfg.Retention.Days) * 24 * time.Hour
	if c.OlderThan != "" {
		retention, err = parseDuration(c.OlderThan)
		if err != nil {
			return err
		}
	} else if cfg.Retention.KeepForever {
		fmt.Println("Retention is set to keep history forever; nothing to prune.")
		fmt.Println("Pass --older-than to prune anyway.")
		return nil
	}

	return c.executeWithStore(store, statsPath, retention, time.Now())
}

// executeWithStore runs prune against a provided store (used by tests).
func (c *PruneCommand) executeWithStore(store *history.FileStore, statsPath string, retention time.Duration, now time.Time) error {
	cutoff := now.Add(-retention)

	if c.DryRun {
		count := countBefore(store.Records(), cutoff)
		if c.globals.JSON {
			out := map[string]interface{}{
				"dry_run":      true,
				"would_remove": count,
				"cutoff":       cutoff.Format(history.DateFormat),
			}
			enc := json.NewEncoder(os.Stdout)
			return enc.Encode(out)
		}
		fmt.Printf("Would remove %d record(s) older than %s (cutoff %s)\n",
			count, formatDurationHuman(retention), cutoff.Format(history.DateFormat))
		return nil
	}

	removed := store.PruneBefore(cutoff)
	if removed > 0 {
		if err := persistAll(store, statsPath); err != nil {
			return err
		}
	}

	if c.globals.JSON {
		out := map[string]interface{}{
			"removed": removed,
			"cutoff":  cutoff.Format(history.DateFormat),
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(out)
	}

	fmt.Printf("Removed %d record(s) older than %s\n", removed, formatDurationHuman(retention))
	return nil
}

// countBefore counts records dated strictly before cutoff, mirroring
// PruneBefore without mutating anything.
func countBefore(records []history.Record, cutoff time.Time) int {
	day := cutoff.Format(history.DateFormat)
	count := 0
	for _, r := range records {
		if _, err := time.Parse(history.DateFormat, r.Date); err == nil && r.Date < day {
			count++
		}
	}
	return count
}
