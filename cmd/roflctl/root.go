package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/roflkit/cmd/roflctl/logger"
	"github.com/joshuapare/roflkit/pkg/rofl"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	permissive bool
	logDir     string

	closeLog = func() error { return nil }
)

var rootCmd = &cobra.Command{
	Use:   "roflctl",
	Short: "Inspect League of Legends replay files",
	Long: `roflctl reads the header of League of Legends replay containers (.rofl)
and reports match metadata, player rosters and the inferred map. It can also
scan folders of replays and keep an sqlite index of their summaries.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeLog()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		BoolVar(&permissive, "permissive", false, "Skip the length-field layout consistency check")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Write JSON debug logs to a daily file in this directory")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	closer, err := logger.Init(logger.Options{Level: level, JSON: jsonOut, LogDir: logDir})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	closeLog = closer
	return nil
}

// readOptions returns the parse options selected by the global flags.
func readOptions() []rofl.Option {
	opts := []rofl.Option{rofl.WithLogger(logger.L)}
	if permissive {
		opts = append(opts, rofl.WithPermissive())
	}
	return opts
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
