package rofl

import (
	"fmt"

	"github.com/joshuapare/roflkit/pkg/types"
)

// PlayerInfo is the roster entry shown for a player.
type PlayerInfo struct {
	Champion string `json:"champion"`
	Name     string `json:"name"`
}

// Summary is the condensed view of a replay used by listings.
type Summary struct {
	FileName    string       `json:"file_name"`
	Map         string       `json:"map"`
	MatchID     uint64       `json:"match_id"`
	GameLength  int          `json:"game_length_seconds"`
	Patch       string       `json:"patch"`
	BluePlayers []PlayerInfo `json:"blue_players"`
	RedPlayers  []PlayerInfo `json:"red_players"`
	BlueVictory bool         `json:"blue_victory"`
}

// Summarize condenses h. Missing SKIN or NAME stats yield empty strings.
func Summarize(fileName string, h types.ReplayHeader) Summary {
	return Summary{
		FileName:    fileName,
		Map:         h.InferredData.MapID.DisplayName(),
		MatchID:     h.PayloadFields.MatchID,
		GameLength:  int(h.MatchMetadata.GameDuration / 1000),
		Patch:       h.MatchMetadata.GameVersion,
		BluePlayers: roster(h.MatchMetadata.BluePlayers),
		RedPlayers:  roster(h.MatchMetadata.RedPlayers),
		BlueVictory: h.InferredData.BlueVictory,
	}
}

// GameLengthString renders the game length as "M m S s".
func (s Summary) GameLengthString() string {
	return fmt.Sprintf("%d m %d s", s.GameLength/60, s.GameLength%60)
}

func roster(players []types.Player) []PlayerInfo {
	out := make([]PlayerInfo, 0, len(players))
	for _, p := range players {
		out = append(out, PlayerInfo{Champion: p["SKIN"], Name: p["NAME"]})
	}
	return out
}
