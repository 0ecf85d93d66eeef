package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/roflkit/pkg/rofl"
	"github.com/joshuapare/roflkit/pkg/types"
)

var playersStats []string

func init() {
	cmd := newPlayersCmd()
	cmd.Flags().StringSliceVar(&playersStats, "stats", defaultPlayerStats,
		"Comma separated stat names to show for each player")
	rootCmd.AddCommand(cmd)
}

var defaultPlayerStats = []string{"CHAMPIONS_KILLED", "NUM_DEATHS", "ASSISTS"}

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players <replay>",
		Short: "List players with selected end-of-game stats",
		Long: `The players command prints every player of both teams with the stats
named by --stats. Unknown stats print as "-".

Example:
  roflctl players match.rofl
  roflctl players match.rofl --stats CHAMPIONS_KILLED,GOLD_EARNED
  roflctl players match.rofl --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayers(cmd.Context(), args)
		},
	}
	return cmd
}

type playerRow struct {
	Team     string            `json:"team"`
	Name     string            `json:"name"`
	Champion string            `json:"champion"`
	Stats    map[string]string `json:"stats"`
}

func runPlayers(ctx context.Context, args []string) error {
	path := args[0]
	if ctx == nil {
		ctx = context.Background()
	}

	h, err := rofl.ReadFile(ctx, path, readOptions()...)
	if err != nil {
		return fmt.Errorf("failed to read replay: %w", err)
	}

	var rows []playerRow
	rows = appendRows(rows, "blue", h.MatchMetadata.BluePlayers)
	rows = appendRows(rows, "red", h.MatchMetadata.RedPlayers)

	if jsonOut {
		return printJSON(rows)
	}

	header := []string{"TEAM", "CHAMPION", "NAME"}
	header = append(header, playersStats...)
	printInfo("%s\n", strings.Join(header, "\t"))
	for _, r := range rows {
		cols := []string{r.Team, r.Champion, r.Name}
		for _, stat := range playersStats {
			v, ok := r.Stats[stat]
			if !ok {
				v = "-"
			}
			cols = append(cols, v)
		}
		printInfo("%s\n", strings.Join(cols, "\t"))
	}
	return nil
}

func appendRows(rows []playerRow, team string, players []types.Player) []playerRow {
	for _, p := range players {
		stats := make(map[string]string, len(playersStats))
		for _, stat := range playersStats {
			if v, ok := p[stat]; ok {
				stats[stat] = v
			}
		}
		rows = append(rows, playerRow{Team: team, Name: p["NAME"], Champion: p["SKIN"], Stats: stats})
	}
	return rows
}
