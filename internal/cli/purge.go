package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/runnerr0/unshorts/internal/history"
)

// Execute implements the go-flags Commander interface for PurgeCommand.
func (c *PurgeCommand) Execute(args []string) error {
	if !c.All {
		return fmt.Errorf("purge requires --all flag for safety")
	}

	// Confirmation prompt unless --force
	if !c.Force {
		fmt.Println("⚠ WARNING: This will permanently delete ALL conversion history.")
		fmt.Println()
		fmt.Println("This action cannot be undone.")
		fmt.Println()
		fmt.Print(`Type "PURGE" to confirm: `)

		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			return fmt.Errorf("aborted: no input received")
		}
		input := strings.TrimSpace(scanner.Text())
		if input != "PURGE" {
			return fmt.Errorf("aborted: confirmation text did not match")
		}
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

// executeWithStore runs purge against a provided store (used by tests).
func (c *PurgeCommand) executeWithStore(store *history.FileStore, statsPath string) error {
	store.PurgeAll()
	if err := persistAll(store, statsPath); err != nil {
		return err
	}

	if c.globals.JSON {
		out := map[string]interface{}{
			"purged":  true,
			"message": "all history deleted",
		}
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(out)
	}

	fmt.Println("Purged all history. unshorts history is empty.")
	return nil
}
