package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/roflkit/internal/testutil"
)

func TestPlayersText(t *testing.T) {
	resetFlags()
	playersStats = []string{"WARDS_PLACED", "GOLD_EARNED"}
	path := writeReplay(t, t.TempDir(), "m.rofl", testutil.Container{})

	output, err := captureOutput(t, func() error {
		return runPlayers(context.Background(), []string{path})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{
		"TEAM\tCHAMPION\tNAME\tWARDS_PLACED\tGOLD_EARNED",
		"blue\tThresh\tBlueSupport\t40\t-",
		"red\tLulu\tRedSupport\t35\t-",
	})
}

func TestPlayersJSON(t *testing.T) {
	resetFlags()
	jsonOut = true
	path := writeReplay(t, t.TempDir(), "m.rofl", testutil.Container{Players: testutil.HowlingAbyssPlayers()})

	output, err := captureOutput(t, func() error {
		return runPlayers(context.Background(), []string{path})
	})
	require.NoError(t, err)

	var rows []playerRow
	require.NoError(t, json.Unmarshal([]byte(output), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "blue", rows[0].Team)
	assert.Equal(t, "Sona", rows[0].Champion)
	assert.Equal(t, "red", rows[1].Team)
	assert.Empty(t, rows[1].Stats)
}
