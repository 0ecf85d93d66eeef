/*
Package rofl reads the header of League of Legends replay containers (.rofl)
without decoding the game-event payload.

# Quick Start

Read a replay file:

	h, err := rofl.ReadFile(ctx, "NA1-3141592653.rofl")
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(h.InferredData.MapID.DisplayName(), h.MatchMetadata.GameVersion)

Read from any seekable source, naming the format explicitly:

	h, err := rofl.Read(ctx, bytes.NewReader(data), types.FormatROFL)

# Options

	h, err := rofl.ReadFile(ctx, path,
	    rofl.WithPermissive(),      // accept overlapping length-field tables
	    rofl.WithLogger(logger),    // debug record per parse step
	)

# Error Handling

Every failure is a *types.Error whose Kind identifies the category and whose
Step names the parse step that failed:

	var te *types.Error
	if errors.As(err, &te) {
	    fmt.Println(te.Kind, te.Step, te.Offset, te.Length)
	}
	if errors.Is(err, types.ErrNotAContainer) {
	    // not a replay
	}

# Concurrency

Parsers are immutable and may be shared. Each parse needs its own source;
never hand the same io.ReadSeeker to two concurrent parses.
*/
package rofl
