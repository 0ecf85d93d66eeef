package format

import (
	"fmt"

	"github.com/joshuapare/roflkit/internal/buf"
	"github.com/joshuapare/roflkit/pkg/types"
)

// ParsePayloadFields decodes the payload header region.
//
//	Offset  Size  Description
//	------  ----  ------------------------------------------
//	 0x00    8    Match id
//	 0x08    4    Match length
//	 0x0C    4    Keyframe amount
//	 0x10    4    Chunk amount
//	 0x14    4    End chunk id
//	 0x18    4    Start chunk id
//	 0x1C    4    Keyframe interval
//	 0x20    2    Encryption key length (N)
//	 0x22    N    Encryption key, UTF-8
func ParsePayloadFields(b []byte) (types.PayloadFields, error) {
	if len(b) < PHFixedSize {
		return types.PayloadFields{}, fmt.Errorf("payload header: have %d of %d bytes: %w", len(b), PHFixedSize, ErrTruncated)
	}
	keyLen := buf.U16At(b, PHEncryptionKeyLengthOffset)
	key, ok := buf.Slice(b, PHEncryptionKeyOffset, int(keyLen))
	if !ok {
		return types.PayloadFields{}, fmt.Errorf("encryption key: have %d of %d bytes: %w",
			len(b)-PHEncryptionKeyOffset, keyLen, ErrTruncated)
	}
	return types.PayloadFields{
		MatchID:             buf.U64At(b, PHMatchIDOffset),
		MatchLength:         buf.U32At(b, PHMatchLengthOffset),
		KeyframeAmount:      buf.U32At(b, PHKeyframeAmountOffset),
		ChunkAmount:         buf.U32At(b, PHChunkAmountOffset),
		EndChunkID:          buf.U32At(b, PHEndChunkIDOffset),
		StartChunkID:        buf.U32At(b, PHStartChunkIDOffset),
		KeyframeInterval:    buf.U32At(b, PHKeyframeIntervalOffset),
		EncryptionKeyLength: keyLen,
		EncryptionKey:       decodeUTF8(key),
	}, nil
}
