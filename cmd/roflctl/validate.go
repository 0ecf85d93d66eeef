package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/roflkit/pkg/rofl"
	"github.com/joshuapare/roflkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newValidateCmd())
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <replay>...",
		Short: "Check that replay headers parse cleanly",
		Long: `The validate command parses each replay header and reports the first
problem found in it, with the failing step and the file region involved.
It exits with an error if any replay fails.

Example:
  roflctl validate match.rofl
  roflctl validate *.rofl --permissive
  roflctl validate match.rofl --json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.Context(), args)
		},
	}
	return cmd
}

type validateResult struct {
	File   string `json:"file"`
	Valid  bool   `json:"valid"`
	Kind   string `json:"kind,omitempty"`
	Step   string `json:"step,omitempty"`
	Offset int64  `json:"offset,omitempty"`
	Length int64  `json:"length,omitempty"`
	Error  string `json:"error,omitempty"`
}

func runValidate(ctx context.Context, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	results := make([]validateResult, 0, len(args))
	var firstErr error
	failed := 0
	for _, path := range args {
		printVerbose("Validating replay: %s\n", path)

		_, err := rofl.ReadFile(ctx, path, readOptions()...)
		result := validateResult{File: path, Valid: err == nil}
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
			result.Error = err.Error()
			var te *types.Error
			if errors.As(err, &te) {
				result.Kind = te.Kind.String()
				result.Step = te.Step
				result.Offset = te.Offset
				result.Length = te.Length
			}
		}
		results = append(results, result)

		if jsonOut {
			continue
		}
		if result.Valid {
			printInfo("✓ %s: header valid\n", path)
		} else {
			printError("%s: %s\n", path, result.Error)
		}
	}

	if jsonOut {
		if err := printJSON(results); err != nil {
			return err
		}
	}

	switch {
	case failed == 1:
		return fmt.Errorf("validation failed: %w", firstErr)
	case failed > 1:
		return fmt.Errorf("validation failed for %d of %d replays, first: %w", failed, len(args), firstErr)
	}
	return nil
}
