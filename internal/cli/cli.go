package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Watch  *WatchCommand
	Add    *AddCommand
	List   *ListCommand
	Remove *RemoveCommand
	Stats  *StatsCommand
	Status *StatusCommand
	Prune  *PruneCommand
	Purge  *PurgeCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "unshorts"
	parser.LongDescription = "Watch the clipboard for YouTube Shorts and short links, rewrite them to canonical watch URLs, and keep a conversion history with usage statistics."

	cmds := &commands{
		Watch:  &WatchCommand{globals: &globals, version: version},
		Add:    &AddCommand{globals: &globals, version: version},
		List:   &ListCommand{globals: &globals, version: version},
		Remove: &RemoveCommand{globals: &globals, version: version},
		Stats:  &StatsCommand{globals: &globals, version: version},
		Status: &StatusCommand{globals: &globals, version: version},
		Prune:  &PruneCommand{globals: &globals, version: version},
		Purge:  &PurgeCommand{globals: &globals, version: version},
	}

	parser.AddCommand("watch", "Run the clipboard watcher", "Poll the clipboard and convert YouTube links until interrupted.", cmds.Watch)
	parser.AddCommand("add", "Convert a single URL", "Run one URL through the conversion pipeline and record it.", cmds.Add)
	parser.AddCommand("list", "Print the conversion history", "Print recorded conversions in insertion order, with optional filters.", cmds.List)
	parser.AddCommand("remove", "Delete a record by URL", "Delete the conversion record with the given canonical URL.", cmds.Remove)
	parser.AddCommand("stats", "Show conversion statistics", "Show per-category statistics: top day, daily/weekly/monthly averages.", cmds.Stats)
	parser.AddCommand("status", "Show history health", "Show history location, record counts, and retention configuration.", cmds.Status)
	parser.AddCommand("prune", "Apply retention pruning", "Remove records older than the retention cutoff.", cmds.Prune)
	parser.AddCommand("purge", "Delete ALL conversion history", "Delete ALL conversion history. Destructive operation with safety prompt.", cmds.Purge)

	return parser, &globals, cmds
}

// Run is the main entry point for the unshorts CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the matched subcommand.
func RunWithArgs(version string, args []string) error {
	// Handle --version before parser (go-flags requires a subcommand, but
	// --version is valid without one).
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("unshorts %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}

	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok {
			if flagsErr.Type == goflags.ErrHelp {
				return nil
			}
		}
		return err
	}

	return nil
}
