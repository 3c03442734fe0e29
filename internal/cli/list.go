package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/unshorts/internal/history"
)

// Execute implements the go-flags Commander interface for ListCommand.
func (c *ListCommand) Execute(args []string) error {
	if c.Type != "" && c.Type != history.TypeShorts && c.Type != history.TypeRegular {
		return fmt.Errorf("invalid --type %q (use shorts or regular)", c.Type)
	}

	store, _, err := openStore(c.globals)
	if err != nil {
		return err
	}

	return c.executeWithStore(store)
}

// executeWithStore runs list against a provided store (used by tests).
func (c *ListCommand) executeWithStore(store *history.FileStore) error {
	records := store.Records()

	if c.Type != "" {
		filtered := records[:0]
		for _, r := range records {
			if r.Type == c.Type {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	if c.Limit > 0 && len(records) > c.Limit {
		records = records[:c.Limit]
	}

	if c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No conversions recorded.")
		return nil
	}

	for _, r := range records {
		fmt.Printf("%s  [%s]  %s - %s\n", r.Date, r.Type, r.Title, r.URL)
	}
	fmt.Printf("\n%d record(s)\n", len(records))

	return nil
}
