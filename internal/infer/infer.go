// Package infer derives match details that the container does not store
// directly, such as the map, from aggregated player statistics.
package infer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/roflkit/pkg/types"
)

// Stats consulted by the map heuristic.
const (
	StatNeutralMinionsKilled = "NEUTRAL_MINIONS_KILLED"
	StatWardsPlaced          = "WARDS_PLACED"
	StatDragonKills          = "DRAGON_KILLS"
	StatWin                  = "WIN"
)

// StatError reports a stat that the heuristic needs but cannot read as an
// integer.
type StatError struct {
	Stat   string
	Player int // index into blue ∪ red
	Value  string
	Err    error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("player %d: stat %s=%q: %v", e.Player, e.Stat, e.Value, e.Err)
}

func (e *StatError) Unwrap() error { return e.Err }

// Details runs every inference over md.
func Details(md types.MatchMetadata) (types.InferredData, error) {
	m, err := Map(md.AllPlayers())
	if err != nil {
		return types.InferredData{}, err
	}
	return types.InferredData{MapID: m, BlueVictory: BlueVictory(md)}, nil
}

// Map classifies the battlefield. The checks form a priority chain:
//
//  1. nobody took jungle camps         -> Howling Abyss
//  2. nobody warded or killed a dragon -> Twisted Treeline
//  3. otherwise                        -> Summoner's Rift
//
// Short or truncated Summoner's Rift games with no wards and no dragons are
// reported as Twisted Treeline.
func Map(players []types.Player) (types.Map, error) {
	jungle, err := anyPositive(players, StatNeutralMinionsKilled)
	if err != nil {
		return types.MapUnknown, err
	}
	if !jungle {
		return types.MapHowlingAbyss, nil
	}
	wards, err := anyPositive(players, StatWardsPlaced)
	if err != nil {
		return types.MapUnknown, err
	}
	if wards {
		return types.MapSummonersRift, nil
	}
	dragon, err := anyPositive(players, StatDragonKills)
	if err != nil {
		return types.MapUnknown, err
	}
	if !dragon {
		return types.MapTwistedTreeline, nil
	}
	return types.MapSummonersRift, nil
}

// BlueVictory reports whether any blue player carries WIN=Win.
func BlueVictory(md types.MatchMetadata) bool {
	for _, p := range md.BluePlayers {
		if strings.EqualFold(strings.TrimSpace(p[StatWin]), "win") {
			return true
		}
	}
	return false
}

// anyPositive reports whether at least one player has stat > 0. Every player
// is checked so a malformed value is reported even after a positive one.
func anyPositive(players []types.Player, stat string) (bool, error) {
	found := false
	for i, p := range players {
		raw, ok := p[stat]
		if !ok {
			return false, &StatError{Stat: stat, Player: i, Err: fmt.Errorf("missing")}
		}
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return false, &StatError{Stat: stat, Player: i, Value: raw, Err: err}
		}
		if n > 0 {
			found = true
		}
	}
	return found, nil
}
