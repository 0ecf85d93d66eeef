// Package buf contains bounds-checked little-endian decoding helpers shared by
// the container decoders.
package buf

import "encoding/binary"

// U16At reads a little-endian uint16 at off. Returns 0 when b is too short.
func U16At(b []byte, off int) uint16 {
	if !Has(b, off, 2) {
		return 0
	}
	return binary.LittleEndian.Uint16(b[off:])
}

// U32At reads a little-endian uint32 at off. Returns 0 when b is too short.
func U32At(b []byte, off int) uint32 {
	if !Has(b, off, 4) {
		return 0
	}
	return binary.LittleEndian.Uint32(b[off:])
}

// U64At reads a little-endian uint64 at off. Returns 0 when b is too short.
func U64At(b []byte, off int) uint64 {
	if !Has(b, off, 8) {
		return 0
	}
	return binary.LittleEndian.Uint64(b[off:])
}
