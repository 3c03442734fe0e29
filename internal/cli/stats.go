package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/runnerr0/unshorts/internal/history"
	"github.com/runnerr0/unshorts/internal/stats"
)

// Execute implements the go-flags Commander interface for StatsCommand.
func (c *StatsCommand) Execute(args []string) error {
	store, _, err := openStore(c.globals)
	if err != nil {
		return err
	}

	return c.executeWithStore(store)
}

// executeWithStore runs stats against a provided store (used by tests).
func (c *StatsCommand) executeWithStore(store *history.FileStore) error {
	records := store.Records()

	if c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats.Document(records))
	}

	printCategory("Shorts Stats", stats.Compute(records, history.TypeShorts))
	fmt.Println()
	printCategory("Regular Videos Stats", stats.Compute(records, history.TypeRegular))

	return nil
}

func printCategory(title string, cs *stats.CategoryStats) {
	fmt.Println(title)
	if cs == nil {
		fmt.Println("No conversions yet.")
		return
	}
	fmt.Printf("Most conversions in one day: %s with %d conversions\n", cs.TopDay, cs.MaxCount)
	fmt.Printf("Avg/day: %g\n", cs.DailyAvg)
	fmt.Printf("Avg/week: %g\n", cs.WeeklyAvg)
	fmt.Printf("Avg/month: %g\n", cs.MonthlyAvg)
}
