package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/runnerr0/unshorts/internal/fetch"
	"github.com/runnerr0/unshorts/internal/history"
	"github.com/runnerr0/unshorts/internal/youtube"
)

// Execute implements the go-flags Commander interface for AddCommand.
func (c *AddCommand) Execute(args []string) error {
	if c.URL == "" {
		return fmt.Errorf("--url is required for add command")
	}

	store, cfg, err := openStore(c.globals)
	if err != nil {
		return err
	}
	statsPath, err := cfg.StatsPath()
	if err != nil {
		return err
	}

	var fetcher titleFetcher
	if c.Title == "" && !c.NoFetch {
		fetcher = fetch.NewClient(
			fetch.WithTimeout(time.Duration(cfg.Fetcher.TimeoutSeconds)*time.Second),
			fetch.WithUserAgent(cfg.Fetcher.UserAgent),
			fetch.WithRateLimit(cfg.Fetcher.RequestsPerMinute),
		)
	}

	return c.executeWithStore(store, statsPath, fetcher)
}

// titleFetcher matches fetch.Client; nil means no fetch is attempted.
type titleFetcher interface {
	Title(ctx context.Context, url string) string
}

// executeWithStore runs the add logic against a provided store (used by tests).
func (c *AddCommand) executeWithStore(store *history.FileStore, statsPath string, fetcher titleFetcher) error {
	linkType := youtube.Classify(c.URL)
	if linkType == youtube.LinkNone {
		return fmt.Errorf("not a recognized YouTube URL: %s", c.URL)
	}

	converted := youtube.Normalize(c.URL)

	if store.Contains(converted) {
		return fmt.Errorf("already recorded: %s", converted)
	}

	title := c.Title
	if title == "" {
		title = fetch.FallbackTitle
		if fetcher != nil {
			title = fetcher.Title(context.Background(), converted)
		}
	}

	rec := history.Record{
		Title: title,
		URL:   converted,
		Date:  time.Now().Format(history.DateFormat),
		Type:  string(linkType),
	}
	store.Append(rec)

	if err := persistAll(store, statsPath); err != nil {
		return err
	}

	// Output confirmation
	if c.globals.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	fmt.Printf("Converted %s\n", c.URL)
	fmt.Printf("  URL: %s\n", rec.URL)
	fmt.Printf("  Title: %s\n", rec.Title)
	fmt.Printf("  Type: %s\n", rec.Type)
	fmt.Printf("  Date: %s\n", rec.Date)

	return nil
}
