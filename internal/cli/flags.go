package cli

// GlobalFlags holds flags available to all subcommands.
type GlobalFlags struct {
	Config  string `long:"config" description:"Path to config file" default:""`
	JSON    bool   `long:"json" description:"Output in JSON format"`
	Verbose bool   `long:"verbose" description:"Enable verbose output"`
	Version bool   `long:"version" description:"Show version and exit"`
}

// WatchCommand — run the clipboard poll loop in the foreground.
type WatchCommand struct {
	Interval int    `long:"interval" description:"Override poll interval in seconds"`
	LogLevel string `long:"log-level" description:"Override log level"`

	globals *GlobalFlags
	version string
}

// AddCommand — convert a single URL through the pipeline without watching.
type AddCommand struct {
	URL     string `long:"url" description:"YouTube URL to convert (required)"`
	Title   string `long:"title" description:"Record this title instead of fetching it"`
	NoFetch bool   `long:"no-fetch" description:"Skip the title fetch; record the fallback title"`

	globals *GlobalFlags
	version string
}

// ListCommand — print the conversion history in insertion order.
type ListCommand struct {
	Type  string `long:"type" description:"Filter by category: shorts | regular"`
	Limit int    `long:"limit" description:"Maximum records to print (0 = all)" default:"0"`

	globals *GlobalFlags
	version string
}

// RemoveCommand — delete a record by its canonical URL.
type RemoveCommand struct {
	URL string `long:"url" description:"Canonical watch URL to remove (required)"`

	globals *GlobalFlags
	version string
}

// StatsCommand — print per-category conversion statistics.
type StatsCommand struct {
	globals *GlobalFlags
	version string
}

// StatusCommand — show history location, record counts, and retention setup.
type StatusCommand struct {
	globals *GlobalFlags
	version string
}

// PruneCommand — apply the retention cutoff to the history.
type PruneCommand struct {
	OlderThan string `long:"older-than" description:"Override retention period (e.g., 30d, 2w)"`
	DryRun    bool   `long:"dry-run" description:"Show what would be pruned without deleting"`

	globals *GlobalFlags
	version string
}

// PurgeCommand — delete ALL conversion history with safety confirmation.
type PurgeCommand struct {
	All   bool `long:"all" description:"Required flag to confirm purge intent"`
	Force bool `long:"force" description:"Skip safety confirmation prompt"`

	globals *GlobalFlags
	version string
}
