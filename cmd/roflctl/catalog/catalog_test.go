package catalog

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/roflkit/pkg/rofl"
)

func TestPutAndList(t *testing.T) {
	ctx := context.Background()
	c, err := Open(filepath.Join(t.TempDir(), "index.db"))
	require.NoError(t, err)
	defer c.Close()

	at := time.Unix(1700000000, 0)
	first := rofl.Summary{
		FileName:    "b.rofl",
		Map:         "Summoner's Rift",
		MatchID:     1 << 40,
		GameLength:  1843,
		Patch:       "9.24",
		BluePlayers: []rofl.PlayerInfo{{Champion: "Ahri", Name: "Blue"}},
		RedPlayers:  []rofl.PlayerInfo{{Champion: "Lux", Name: "Red"}},
		BlueVictory: true,
	}
	second := rofl.Summary{FileName: "a.rofl", Map: "Howling Abyss", BluePlayers: []rofl.PlayerInfo{}, RedPlayers: []rofl.PlayerInfo{}}

	require.NoError(t, c.Put(ctx, "/replays/b.rofl", first, at))
	require.NoError(t, c.Put(ctx, "/replays/a.rofl", second, at))

	entries, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "/replays/a.rofl", entries[0].Path)
	assert.Equal(t, second, entries[0].Summary)
	assert.Equal(t, first, entries[1].Summary)
	assert.True(t, entries[1].IndexedAt.Equal(at))
}

func TestPutReplaces(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "index.db")
	c, err := Open(path)
	require.NoError(t, err)

	s := rofl.Summary{FileName: "x.rofl", Map: "Unknown Map", BluePlayers: []rofl.PlayerInfo{}, RedPlayers: []rofl.PlayerInfo{}}
	require.NoError(t, c.Put(ctx, "x.rofl", s, time.Unix(1, 0)))
	s.Map = "Twisted Treeline"
	require.NoError(t, c.Put(ctx, "x.rofl", s, time.Unix(2, 0)))
	require.NoError(t, c.Close())

	// Reopening keeps the data.
	c, err = Open(path)
	require.NoError(t, err)
	defer c.Close()
	entries, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Twisted Treeline", entries[0].Summary.Map)
	assert.EqualValues(t, 2, entries[0].IndexedAt.Unix())
}
