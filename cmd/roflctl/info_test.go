package main

import (
	"context"
	"testing"

	"github.com/joshuapare/roflkit/internal/testutil"
	"github.com/joshuapare/roflkit/pkg/types"
)

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	rift := writeReplay(t, dir, "rift.rofl", testutil.Container{})
	abyss := writeReplay(t, dir, "abyss.rofl", testutil.Container{Players: testutil.HowlingAbyssPlayers()})
	broken := writeReplay(t, dir, "broken.rofl", testutil.Container{
		Layout: func(lf *types.LengthFields) { lf.PayloadOffset-- },
	})

	tests := []struct {
		name           string
		path           string
		json           bool
		verbose        bool
		permissive     bool
		wantErr        bool
		wantContain    []string
		wantNotContain []string
	}{
		{
			name: "summoners rift",
			path: rift,
			wantContain: []string{
				"Match ID: 4242424242", "Patch: 9.24.300.9821", "Length: 30 m 43 s",
				"Map: Summoner's Rift", "Winner: Blue", "Garen", "BlueTop", "Lulu",
			},
			wantNotContain: []string{"Layout:"},
		},
		{
			name:        "howling abyss red win",
			path:        abyss,
			wantContain: []string{"Map: Howling Abyss", "Winner: Red", "Ezreal"},
		},
		{
			name:        "verbose shows layout",
			path:        rift,
			verbose:     true,
			wantContain: []string{"Layout:", "Metadata: offset 288"},
		},
		{
			name:        "json",
			path:        rift,
			json:        true,
			wantContain: []string{`"match_id": 4242424242`, `"game_length": "30 m 43 s"`, `"keyframe_interval": 60000`},
		},
		{
			name:    "inconsistent layout",
			path:    broken,
			wantErr: true,
		},
		{
			name:        "inconsistent layout permissive",
			path:        broken,
			permissive:  true,
			wantContain: []string{"Map: Summoner's Rift"},
		},
		{
			name:    "missing file",
			path:    dir + "/missing.rofl",
			wantErr: true,
		},
		{
			name:    "unsupported extension",
			path:    dir + "/old.lrf",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json
			verbose = tt.verbose
			permissive = tt.permissive

			output, err := captureOutput(t, func() error {
				return runInfo(context.Background(), []string{tt.path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runInfo() error = %v, wantErr %v\nOutput: %s", err, tt.wantErr, output)
				return
			}
			if tt.json && !tt.wantErr {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}
