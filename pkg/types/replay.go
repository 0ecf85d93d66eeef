package types

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// -----------------------------------------------------------------------------
// Container Records
// -----------------------------------------------------------------------------

// LengthFields is the fixed directory at offset 262 that locates every other
// region. All offsets are absolute.
type LengthFields struct {
	HeaderLength        uint16
	FileLength          uint32
	MetadataOffset      uint32
	MetadataLength      uint32
	PayloadHeaderOffset uint32
	PayloadHeaderLength uint32
	PayloadOffset       uint32
}

// Player maps stat names (e.g. "NAME", "TEAM", "WARDS_PLACED") to their
// textual values. Numeric stats stay strings; callers parse on demand.
type Player map[string]string

// MatchMetadata holds the scalar match fields of the metadata JSON and the
// players partitioned by team.
type MatchMetadata struct {
	GameDuration    uint64 // milliseconds
	GameVersion     string
	LastGameChunkID uint32
	LastKeyframeID  uint32
	BluePlayers     []Player // TEAM "100", source order
	RedPlayers      []Player // TEAM "200", source order
}

// AllPlayers returns blue players followed by red players.
func (m MatchMetadata) AllPlayers() []Player {
	all := make([]Player, 0, len(m.BluePlayers)+len(m.RedPlayers))
	all = append(all, m.BluePlayers...)
	return append(all, m.RedPlayers...)
}

// PayloadFields is the fixed-width payload header plus its encryption key.
type PayloadFields struct {
	MatchID             uint64
	MatchLength         uint32
	KeyframeAmount      uint32
	ChunkAmount         uint32
	EndChunkID          uint32
	StartChunkID        uint32
	KeyframeInterval    uint32
	EncryptionKeyLength uint16
	EncryptionKey       string
}

// Map enumerates the battlefields a match can be inferred to be played on.
type Map int

const (
	MapUnknown Map = iota
	MapHowlingAbyss
	MapSummonersRift
	MapTwistedTreeline
)

func (m Map) String() string {
	switch m {
	case MapHowlingAbyss:
		return "HowlingAbyss"
	case MapSummonersRift:
		return "SummonersRift"
	case MapTwistedTreeline:
		return "TwistedTreeline"
	default:
		return "Unknown"
	}
}

// DisplayName returns the human-readable map name.
func (m Map) DisplayName() string {
	switch m {
	case MapHowlingAbyss:
		return "Howling Abyss"
	case MapSummonersRift:
		return "Summoner's Rift"
	case MapTwistedTreeline:
		return "Twisted Treeline"
	default:
		return "Unknown Map"
	}
}

// InferredData is derived from MatchMetadata and never stored on its own.
type InferredData struct {
	MapID       Map
	BlueVictory bool
}

// ReplayHeader is the sole output of a parse.
type ReplayHeader struct {
	LengthFields  LengthFields
	MatchMetadata MatchMetadata
	PayloadFields PayloadFields
	InferredData  InferredData
}

// -----------------------------------------------------------------------------
// Format Variants & Parsers
// -----------------------------------------------------------------------------

// Format tags the container variant carried alongside a byte source.
type Format int

const (
	FormatUnknown Format = iota
	FormatROFL           // official client replays
	FormatLRF            // legacy LoLReplay files
	FormatLPR            // legacy BaronReplays files
)

func (f Format) String() string {
	switch f {
	case FormatROFL:
		return "rofl"
	case FormatLRF:
		return "lrf"
	case FormatLPR:
		return "lpr"
	default:
		return "unknown"
	}
}

// ParseFormat maps a name or file extension ("rofl", ".ROFL") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "rofl":
		return FormatROFL, nil
	case "lrf":
		return FormatLRF, nil
	case "lpr":
		return FormatLPR, nil
	default:
		return FormatUnknown, &Error{Kind: ErrKindUnsupported, Msg: fmt.Sprintf("unknown replay format %q", s)}
	}
}

// Parser decodes one format variant. Implementations hold only immutable
// configuration, so one Parser may serve concurrent parses of different
// sources. A single source must not be shared between concurrent parses.
type Parser interface {
	Format() Format
	Parse(ctx context.Context, src io.ReadSeeker) (ReplayHeader, error)
}

// ReadOptions controls parse behavior.
type ReadOptions struct {
	// Permissive skips the length-field cross-invariant check, matching the
	// legacy reader. Regions are still bounds-checked when they are read.
	Permissive bool

	// Logger receives one debug record per completed step. Nil discards.
	Logger *slog.Logger
}
