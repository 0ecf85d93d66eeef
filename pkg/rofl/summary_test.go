package rofl_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/roflkit/internal/testutil"
	"github.com/joshuapare/roflkit/pkg/rofl"
	"github.com/joshuapare/roflkit/pkg/types"
)

func TestSummarize(t *testing.T) {
	h, err := rofl.ReadBytes(context.Background(), testutil.Container{MatchID: 77}.Bytes())
	require.NoError(t, err)

	s := rofl.Summarize("match.rofl", h)
	assert.Equal(t, "match.rofl", s.FileName)
	assert.Equal(t, "Summoner's Rift", s.Map)
	assert.EqualValues(t, 77, s.MatchID)
	assert.Equal(t, 1843, s.GameLength)
	assert.Equal(t, "30 m 43 s", s.GameLengthString())
	assert.Equal(t, "9.24.300.9821", s.Patch)
	require.Len(t, s.BluePlayers, 5)
	assert.Equal(t, rofl.PlayerInfo{Champion: "Garen", Name: "BlueTop"}, s.BluePlayers[0])
	assert.Equal(t, rofl.PlayerInfo{Champion: "Lulu", Name: "RedSupport"}, s.RedPlayers[4])
	assert.True(t, s.BlueVictory)
}

func TestSummarizeMissingStats(t *testing.T) {
	h := types.ReplayHeader{MatchMetadata: types.MatchMetadata{
		GameDuration: 59999,
		BluePlayers:  []types.Player{{"TEAM": "100"}},
	}}
	s := rofl.Summarize("x.rofl", h)
	assert.Equal(t, "Unknown Map", s.Map)
	assert.Equal(t, "0 m 59 s", s.GameLengthString())
	assert.Equal(t, []rofl.PlayerInfo{{}}, s.BluePlayers)
	assert.NotNil(t, s.RedPlayers)

	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"red_players":[]`)
}
