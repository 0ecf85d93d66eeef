package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/roflkit/cmd/roflctl/catalog"
)

var (
	indexJobs      int
	indexRecursive bool
)

func init() {
	cmd := newIndexCmd()
	cmd.Flags().BoolVarP(&indexRecursive, "recursive", "r", false, "Descend into subdirectories")
	cmd.Flags().IntVarP(&indexJobs, "jobs", "j", runtime.NumCPU(), "Number of replays parsed concurrently")
	cmd.AddCommand(newIndexListCmd())
	rootCmd.AddCommand(cmd)
}

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index <db> <path>...",
		Short: "Store replay summaries in an sqlite index",
		Long: `The index command parses replays like scan does and stores each
summary in the sqlite database <db>, replacing earlier entries for the same
path. Replays that fail to parse are reported and skipped.

Example:
  roflctl index replays.db ~/Replays -r
  roflctl index list replays.db`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndex(cmd.Context(), args)
		},
	}
	return cmd
}

func newIndexListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <db>",
		Short: "List the replays stored in an index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIndexList(cmd.Context(), args)
		},
	}
}

func runIndex(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	dbPath := args[0]

	paths, err := collectReplays(args[1:], indexRecursive)
	if err != nil {
		return err
	}
	results, err := scanReplays(ctx, paths, indexJobs)
	if err != nil {
		return err
	}

	c, err := catalog.Open(dbPath)
	if err != nil {
		return err
	}
	defer c.Close()

	now := time.Now()
	stored := 0
	for _, r := range results {
		if r.Summary == nil {
			printError("%s: %s\n", r.Path, r.Error)
			continue
		}
		key := r.Path
		if abs, err := filepath.Abs(r.Path); err == nil {
			key = abs
		}
		if err := c.Put(ctx, key, *r.Summary, now); err != nil {
			return err
		}
		stored++
		printVerbose("Indexed %s\n", key)
	}

	if jsonOut {
		return printJSON(map[string]int{"indexed": stored, "failed": len(results) - stored})
	}
	printInfo("Indexed %d replay(s) into %s\n", stored, dbPath)
	return nil
}

func runIndexList(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	c, err := catalog.Open(args[0])
	if err != nil {
		return err
	}
	defer c.Close()

	entries, err := c.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list index: %w", err)
	}

	if jsonOut {
		return printJSON(entries)
	}
	for _, e := range entries {
		printInfo("%s\t%d\t%s\t%s\t%s\n",
			e.Path, e.Summary.MatchID, e.Summary.Patch, e.Summary.Map, e.Summary.GameLengthString())
	}
	return nil
}
