package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/joshuapare/roflkit/pkg/rofl"
	"github.com/joshuapare/roflkit/pkg/types"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <replay>",
		Short: "Show the match summary of a replay",
		Long: `The info command parses a replay header and displays the match id,
patch, game length, inferred map, winner and both rosters.

Example:
  roflctl info EUW1-4242424242.rofl
  roflctl info EUW1-4242424242.rofl --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context(), args)
		},
	}
	return cmd
}

type infoResult struct {
	rofl.Summary
	GameLength string             `json:"game_length"`
	Layout     types.LengthFields `json:"layout"`
	Payload    payloadView        `json:"payload"`
}

type payloadView struct {
	MatchLength      uint32 `json:"match_length"`
	KeyframeAmount   uint32 `json:"keyframe_amount"`
	ChunkAmount      uint32 `json:"chunk_amount"`
	EndChunkID       uint32 `json:"end_chunk_id"`
	StartChunkID     uint32 `json:"start_chunk_id"`
	KeyframeInterval uint32 `json:"keyframe_interval"`
}

func runInfo(ctx context.Context, args []string) error {
	path := args[0]
	if ctx == nil {
		ctx = context.Background()
	}

	printVerbose("Reading replay: %s\n", path)

	h, err := rofl.ReadFile(ctx, path, readOptions()...)
	if err != nil {
		return fmt.Errorf("failed to read replay: %w", err)
	}
	s := rofl.Summarize(filepath.Base(path), h)

	if jsonOut {
		pf := h.PayloadFields
		return printJSON(infoResult{
			Summary:    s,
			GameLength: s.GameLengthString(),
			Layout:     h.LengthFields,
			Payload: payloadView{
				MatchLength:      pf.MatchLength,
				KeyframeAmount:   pf.KeyframeAmount,
				ChunkAmount:      pf.ChunkAmount,
				EndChunkID:       pf.EndChunkID,
				StartChunkID:     pf.StartChunkID,
				KeyframeInterval: pf.KeyframeInterval,
			},
		})
	}

	printInfo("\nReplay Information:\n")
	printInfo("  File: %s\n", path)
	if stat, err := os.Stat(path); err == nil {
		size := stat.Size()
		if size < 1024*1024 {
			printInfo("  Size: %.1f KB\n", float64(size)/1024)
		} else {
			printInfo("  Size: %.1f MB\n", float64(size)/(1024*1024))
		}
	}
	printInfo("  Match ID: %d\n", s.MatchID)
	printInfo("  Patch: %s\n", s.Patch)
	printInfo("  Length: %s\n", s.GameLengthString())
	printInfo("  Map: %s\n", s.Map)
	if s.BlueVictory {
		printInfo("  Winner: Blue\n")
	} else {
		printInfo("  Winner: Red\n")
	}

	printRoster("Blue", s.BluePlayers)
	printRoster("Red", s.RedPlayers)

	printVerbose("\nLayout:\n")
	printVerbose("  Metadata: offset %d, length %d\n", h.LengthFields.MetadataOffset, h.LengthFields.MetadataLength)
	printVerbose("  Payload header: offset %d, length %d\n",
		h.LengthFields.PayloadHeaderOffset, h.LengthFields.PayloadHeaderLength)
	printVerbose("  Payload: offset %d, %d chunks, %d keyframes\n",
		h.LengthFields.PayloadOffset, h.PayloadFields.ChunkAmount, h.PayloadFields.KeyframeAmount)
	return nil
}

func printRoster(team string, players []rofl.PlayerInfo) {
	printInfo("\n%s Team:\n", team)
	for _, p := range players {
		printInfo("  %-16s %s\n", p.Champion, p.Name)
	}
}
