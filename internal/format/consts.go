// Package format houses the low-level decoders for the ROFL replay
// container. Decoders operate on byte regions already read from the source
// and never touch I/O, so higher-level packages decide how regions are
// located and fetched.
package format

// Signature is the four-byte magic at the start of every container.
// Layout:
//
//	0x00  'R' 'I' 'O' 'T'
var Signature = []byte{'R', 'I', 'O', 'T'}

const (
	SignatureOffset = 0
	SignatureSize   = 4
)

// ============================================================================
// Length-Field Table
// ============================================================================
// The table sits at a fixed absolute offset, independent of anything read
// before it.
const (
	LengthFieldsOffset = 262
	LengthFieldsSize   = 26

	LFHeaderLengthOffset        = 0x00 // u16
	LFFileLengthOffset          = 0x02 // u32
	LFMetadataOffsetOffset      = 0x06 // u32
	LFMetadataLengthOffset      = 0x0A // u32
	LFPayloadHeaderOffsetOffset = 0x0E // u32
	LFPayloadHeaderLengthOffset = 0x12 // u32
	LFPayloadOffsetOffset       = 0x16 // u32
)

// ============================================================================
// Payload Header
// ============================================================================
const (
	PHMatchIDOffset             = 0x00 // u64
	PHMatchLengthOffset         = 0x08 // u32
	PHKeyframeAmountOffset      = 0x0C // u32
	PHChunkAmountOffset         = 0x10 // u32
	PHEndChunkIDOffset          = 0x14 // u32
	PHStartChunkIDOffset        = 0x18 // u32
	PHKeyframeIntervalOffset    = 0x1C // u32
	PHEncryptionKeyLengthOffset = 0x20 // u16
	PHEncryptionKeyOffset       = 0x22 // start of key bytes

	// PHFixedSize is the size of the fixed fields preceding the key.
	PHFixedSize = PHEncryptionKeyOffset
)

// ============================================================================
// Match Metadata
// ============================================================================
const (
	MetaGameLengthKey      = "gameLength"
	MetaGameVersionKey     = "gameVersion"
	MetaLastGameChunkIDKey = "lastGameChunkId"
	MetaLastKeyFrameIDKey  = "lastKeyFrameId"
	MetaStatsJSONKey       = "statsJson"

	// StatTeam routes a player into a team.
	StatTeam = "TEAM"
	TeamBlue = "100"
	TeamRed  = "200"
)
