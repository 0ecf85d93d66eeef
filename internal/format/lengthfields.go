package format

import (
	"fmt"

	"github.com/joshuapare/roflkit/internal/buf"
	"github.com/joshuapare/roflkit/pkg/types"
)

// ParseLengthFields decodes the length-field table.
//
//	Offset  Size  Description
//	------  ----  ------------------------------------------
//	 0x00    2    Header length
//	 0x02    4    File length
//	 0x06    4    Metadata offset (absolute)
//	 0x0A    4    Metadata length
//	 0x0E    4    Payload header offset (absolute)
//	 0x12    4    Payload header length
//	 0x16    4    Payload offset (absolute)
func ParseLengthFields(b []byte) (types.LengthFields, error) {
	if len(b) < LengthFieldsSize {
		return types.LengthFields{}, fmt.Errorf("length fields: have %d of %d bytes: %w", len(b), LengthFieldsSize, ErrTruncated)
	}
	return types.LengthFields{
		HeaderLength:        buf.U16At(b, LFHeaderLengthOffset),
		FileLength:          buf.U32At(b, LFFileLengthOffset),
		MetadataOffset:      buf.U32At(b, LFMetadataOffsetOffset),
		MetadataLength:      buf.U32At(b, LFMetadataLengthOffset),
		PayloadHeaderOffset: buf.U32At(b, LFPayloadHeaderOffsetOffset),
		PayloadHeaderLength: buf.U32At(b, LFPayloadHeaderLengthOffset),
		PayloadOffset:       buf.U32At(b, LFPayloadOffsetOffset),
	}, nil
}

// ValidateLayout checks the region ordering the table promises:
//
//	metadataOffset + metadataLength           <= payloadHeaderOffset
//	payloadHeaderOffset + payloadHeaderLength <= payloadOffset <= fileLength
func ValidateLayout(lf types.LengthFields) error {
	if end := buf.End(lf.MetadataOffset, lf.MetadataLength); end > uint64(lf.PayloadHeaderOffset) {
		return fmt.Errorf("metadata ends at %d past payload header at %d: %w", end, lf.PayloadHeaderOffset, ErrInconsistentLayout)
	}
	if end := buf.End(lf.PayloadHeaderOffset, lf.PayloadHeaderLength); end > uint64(lf.PayloadOffset) {
		return fmt.Errorf("payload header ends at %d past payload at %d: %w", end, lf.PayloadOffset, ErrInconsistentLayout)
	}
	if lf.PayloadOffset > lf.FileLength {
		return fmt.Errorf("payload at %d past file length %d: %w", lf.PayloadOffset, lf.FileLength, ErrInconsistentLayout)
	}
	return nil
}
