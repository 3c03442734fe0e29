package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/unshorts/internal/history"
)

// Execute implements the go-flags Commander interface for RemoveCommand.
func (c *RemoveCommand) Execute(args []string) error {
	if c.URL == "" {
		return fmt.Errorf("--url is required for remove command")
	}

	store, cfg, err := openStore(c.globals)
	if err != nil {
		return err
	}
	statsPath, err := cfg.StatsPath()
	if err != nil {
		return err
	}

	return c.executeWithStore(store, statsPath)
}

// executeWithStore runs remove against a provided store (used by tests).
func (c *RemoveCommand) executeWithStore(store *history.FileStore, statsPath string) error {
	removed := store.Remove(c.URL)
	if removed == 0 {
		return fmt.Errorf("no record with URL %s", c.URL)
	}

	if err := persistAll(store, statsPath); err != nil {
		return err
	}

	if c.globals.JSON {
		out := map[string]interface{}{
			"removed": removed,
			"url":     c.URL,
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(out)
	}

	fmt.Printf("Removed %d record(s) for %s\n", removed, c.URL)
	return nil
}
