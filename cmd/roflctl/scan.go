package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/roflkit/cmd/roflctl/logger"
	"github.com/joshuapare/roflkit/pkg/rofl"
)

var (
	scanJobs      int
	scanRecursive bool
)

func init() {
	cmd := newScanCmd()
	cmd.Flags().IntVarP(&scanJobs, "jobs", "j", runtime.NumCPU(), "Number of replays parsed concurrently")
	cmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false, "Descend into subdirectories")
	rootCmd.AddCommand(cmd)
}

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <path>...",
		Short: "Summarize every replay under the given files and folders",
		Long: `The scan command parses every .rofl file named on the command line or
found in the given directories, in parallel, and prints one line per replay.
Replays that fail to parse are reported without stopping the scan.

Example:
  roflctl scan ~/Documents/League\ of\ Legends/Replays
  roflctl scan -r -j 8 replays/ --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), args)
		},
	}
	return cmd
}

// scanResult is the outcome for one replay. Exactly one of Summary and
// Error is set.
type scanResult struct {
	Path    string        `json:"path"`
	Summary *rofl.Summary `json:"summary,omitempty"`
	Error   string        `json:"error,omitempty"`
}

func runScan(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	paths, err := collectReplays(args, scanRecursive)
	if err != nil {
		return err
	}
	printVerbose("Scanning %d replay(s)\n", len(paths))

	results, err := scanReplays(ctx, paths, scanJobs)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(results)
	}

	failed := 0
	for _, r := range results {
		if r.Summary == nil {
			failed++
			printError("%s: %s\n", r.Path, r.Error)
			continue
		}
		s := r.Summary
		winner := "red"
		if s.BlueVictory {
			winner = "blue"
		}
		printInfo("%s\t%d\t%s\t%s\t%s\twinner=%s\n",
			r.Path, s.MatchID, s.Patch, s.Map, s.GameLengthString(), winner)
	}
	printVerbose("\n%d parsed, %d failed\n", len(results)-failed, failed)
	return nil
}

// scanReplays parses paths with at most jobs concurrent parses. Results are
// returned in the order of paths.
func scanReplays(ctx context.Context, paths []string, jobs int) ([]scanResult, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]scanResult, len(paths))
	opts := readOptions()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			h, err := rofl.ReadFile(ctx, path, opts...)
			if err != nil {
				logger.L.Debug("scan failed", "path", path, "error", err)
				results[i] = scanResult{Path: path, Error: err.Error()}
				return nil
			}
			s := rofl.Summarize(filepath.Base(path), h)
			results[i] = scanResult{Path: path, Summary: &s}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// collectReplays expands args into a sorted, duplicate-free list of replay
// files. Directories contribute their .rofl entries.
func collectReplays(args []string, recursive bool) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", arg, err)
		}
		if !info.IsDir() {
			add(arg)
			continue
		}
		err = filepath.WalkDir(arg, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if p != arg && !recursive {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.EqualFold(filepath.Ext(p), ".rofl") {
				add(p)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", arg, err)
		}
	}
	sort.Strings(out)
	return out, nil
}
