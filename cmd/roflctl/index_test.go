package main

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/roflkit/cmd/roflctl/catalog"
	"github.com/joshuapare/roflkit/internal/testutil"
)

func TestIndexAndList(t *testing.T) {
	resetFlags()
	dir := replayFolder(t)
	db := filepath.Join(t.TempDir(), "replays.db")

	output, err := captureOutput(t, func() error {
		return runIndex(context.Background(), []string{db, dir})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"Indexed 2 replay(s)"})

	// Re-indexing replaces rows instead of duplicating them.
	writeReplay(t, dir, "b.rofl", testutil.Container{MatchID: 99})
	_, err = captureOutput(t, func() error {
		return runIndex(context.Background(), []string{db, dir})
	})
	require.NoError(t, err)

	jsonOut = true
	output, err = captureOutput(t, func() error {
		return runIndexList(context.Background(), []string{db})
	})
	require.NoError(t, err)

	var entries []catalog.Entry
	require.NoError(t, json.Unmarshal([]byte(output), &entries))
	require.Len(t, entries, 2)
	assert.Equal(t, "a.ROFL", entries[0].Summary.FileName)
	assert.EqualValues(t, 99, entries[1].Summary.MatchID)
	assert.True(t, filepath.IsAbs(entries[0].Path))
}

func TestIndexListText(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	writeReplay(t, dir, "x.rofl", testutil.Container{MatchID: 7})
	db := filepath.Join(dir, "replays.db")

	_, err := captureOutput(t, func() error {
		return runIndex(context.Background(), []string{db, dir})
	})
	require.NoError(t, err)

	output, err := captureOutput(t, func() error {
		return runIndexList(context.Background(), []string{db})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"x.rofl\t7\t9.24.300.9821\tSummoner's Rift\t30 m 43 s"})
}
