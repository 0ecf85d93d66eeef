// Package testutil synthesizes ROFL containers for tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/joshuapare/roflkit/internal/format"
	"github.com/joshuapare/roflkit/pkg/types"
)

// HeaderLength is the size of the magic plus length-field table area.
const HeaderLength = format.LengthFieldsOffset + format.LengthFieldsSize

// Container describes a synthetic replay. Zero fields get realistic defaults
// from Bytes.
type Container struct {
	// Metadata is the raw metadata region. Nil selects MetadataJSON of Players.
	Metadata []byte
	// Players feeds the default metadata. Nil selects SummonersRiftPlayers.
	Players []types.Player

	MatchID          uint64
	EncryptionKey    string
	KeyframeInterval uint32

	// Payload is the opaque game-event payload appended last.
	Payload []byte

	// Layout, when set, rewrites the length-field table after it has been
	// computed from the regions above.
	Layout func(*types.LengthFields)
}

// Bytes encodes c. The payload header follows the metadata directly and the
// payload follows the payload header.
func (c Container) Bytes() []byte {
	md := c.Metadata
	if md == nil {
		players := c.Players
		if players == nil {
			players = SummonersRiftPlayers()
		}
		md = MetadataJSON(players)
	}
	key := c.EncryptionKey
	if key == "" {
		key = "dGVzdC1lbmNyeXB0aW9uLWtleQ=="
	}
	matchID := c.MatchID
	if matchID == 0 {
		matchID = 4242424242
	}
	interval := c.KeyframeInterval
	if interval == 0 {
		interval = 60000
	}
	payload := c.Payload
	if payload == nil {
		payload = []byte("opaque-payload-bytes")
	}

	ph := make([]byte, format.PHFixedSize+len(key))
	format.PutU64(ph, format.PHMatchIDOffset, matchID)
	format.PutU32(ph, format.PHMatchLengthOffset, 1843021)
	format.PutU32(ph, format.PHKeyframeAmountOffset, 31)
	format.PutU32(ph, format.PHChunkAmountOffset, 62)
	format.PutU32(ph, format.PHEndChunkIDOffset, 62)
	format.PutU32(ph, format.PHStartChunkIDOffset, 1)
	format.PutU32(ph, format.PHKeyframeIntervalOffset, interval)
	format.PutU16(ph, format.PHEncryptionKeyLengthOffset, uint16(len(key)))
	copy(ph[format.PHEncryptionKeyOffset:], key)

	lf := types.LengthFields{
		HeaderLength:        HeaderLength,
		MetadataOffset:      HeaderLength,
		MetadataLength:      uint32(len(md)),
		PayloadHeaderOffset: HeaderLength + uint32(len(md)),
		PayloadHeaderLength: uint32(len(ph)),
	}
	lf.PayloadOffset = lf.PayloadHeaderOffset + lf.PayloadHeaderLength
	lf.FileLength = lf.PayloadOffset + uint32(len(payload))
	if c.Layout != nil {
		c.Layout(&lf)
	}

	out := make([]byte, HeaderLength, int(HeaderLength)+len(md)+len(ph)+len(payload))
	copy(out, format.Signature)
	// Bytes between the magic and the table carry a signature blob in real
	// files; fill them so nothing relies on zeros.
	for i := format.SignatureSize; i < format.LengthFieldsOffset; i++ {
		out[i] = byte(i)
	}
	PutLengthFields(out[format.LengthFieldsOffset:], lf)
	out = append(out, md...)
	out = append(out, ph...)
	return append(out, payload...)
}

// PutLengthFields encodes lf into b, which must hold LengthFieldsSize bytes.
func PutLengthFields(b []byte, lf types.LengthFields) {
	format.PutU16(b, format.LFHeaderLengthOffset, lf.HeaderLength)
	format.PutU32(b, format.LFFileLengthOffset, lf.FileLength)
	format.PutU32(b, format.LFMetadataOffsetOffset, lf.MetadataOffset)
	format.PutU32(b, format.LFMetadataLengthOffset, lf.MetadataLength)
	format.PutU32(b, format.LFPayloadHeaderOffsetOffset, lf.PayloadHeaderOffset)
	format.PutU32(b, format.LFPayloadHeaderLengthOffset, lf.PayloadHeaderLength)
	format.PutU32(b, format.LFPayloadOffsetOffset, lf.PayloadOffset)
}

// MetadataJSON encodes players the way the client does: statsJson is a
// string holding the JSON-encoded player array.
func MetadataJSON(players []types.Player) []byte {
	stats, err := json.Marshal(players)
	if err != nil {
		panic(fmt.Sprintf("testutil: marshal players: %v", err))
	}
	doc, err := json.Marshal(map[string]any{
		format.MetaGameLengthKey:      1843021,
		format.MetaGameVersionKey:     "9.24.300.9821",
		format.MetaLastGameChunkIDKey: 62,
		format.MetaLastKeyFrameIDKey:  31,
		format.MetaStatsJSONKey:       string(stats),
	})
	if err != nil {
		panic(fmt.Sprintf("testutil: marshal metadata: %v", err))
	}
	return doc
}

// NewPlayer builds a player with the stats the map heuristic reads.
func NewPlayer(name, skin, team string, jungle, wards, dragons int, win bool) types.Player {
	result := "Fail"
	if win {
		result = "Win"
	}
	return types.Player{
		"NAME":                   name,
		"SKIN":                   skin,
		"TEAM":                   team,
		"WIN":                    result,
		"NEUTRAL_MINIONS_KILLED": strconv.Itoa(jungle),
		"WARDS_PLACED":           strconv.Itoa(wards),
		"DRAGON_KILLS":           strconv.Itoa(dragons),
	}
}

// SummonersRiftPlayers returns a five versus five roster with jungle, wards
// and dragons, won by blue.
func SummonersRiftPlayers() []types.Player {
	return []types.Player{
		NewPlayer("BlueTop", "Garen", "100", 4, 9, 0, true),
		NewPlayer("RedTop", "Darius", "200", 2, 7, 0, false),
		NewPlayer("BlueJungle", "LeeSin", "100", 140, 12, 3, true),
		NewPlayer("RedJungle", "Elise", "200", 120, 10, 1, false),
		NewPlayer("BlueMid", "Ahri", "100", 10, 8, 0, true),
		NewPlayer("RedMid", "Syndra", "200", 6, 9, 0, false),
		NewPlayer("BlueBot", "Jinx", "100", 0, 6, 0, true),
		NewPlayer("RedBot", "Caitlyn", "200", 0, 5, 0, false),
		NewPlayer("BlueSupport", "Thresh", "100", 0, 40, 0, true),
		NewPlayer("RedSupport", "Lulu", "200", 0, 35, 0, false),
	}
}

// HowlingAbyssPlayers returns a roster with no jungle camps taken.
func HowlingAbyssPlayers() []types.Player {
	return []types.Player{
		NewPlayer("BlueA", "Sona", "100", 0, 0, 0, false),
		NewPlayer("RedA", "Ezreal", "200", 0, 0, 0, true),
	}
}
