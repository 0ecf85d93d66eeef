package format

import (
	"errors"
	"testing"
)

func payloadHeader(key []byte, declared uint16) []byte {
	b := make([]byte, PHFixedSize+len(key)+4)
	PutU64(b, PHMatchIDOffset, 3141592653)
	PutU32(b, PHMatchLengthOffset, 1800000)
	PutU32(b, PHKeyframeAmountOffset, 30)
	PutU32(b, PHChunkAmountOffset, 60)
	PutU32(b, PHEndChunkIDOffset, 61)
	PutU32(b, PHStartChunkIDOffset, 1)
	PutU32(b, PHKeyframeIntervalOffset, 60000)
	PutU16(b, PHEncryptionKeyLengthOffset, declared)
	copy(b[PHEncryptionKeyOffset:], key)
	// Trailing bytes must never leak into the key.
	copy(b[PHEncryptionKeyOffset+len(key):], "XXXX")
	return b
}

func TestParsePayloadFields(t *testing.T) {
	key := []byte("k3y+ünïcödé/==")
	pf, err := ParsePayloadFields(payloadHeader(key, uint16(len(key))))
	if err != nil {
		t.Fatalf("ParsePayloadFields: %v", err)
	}
	if pf.MatchID != 3141592653 || pf.MatchLength != 1800000 {
		t.Fatalf("scalar mismatch: %+v", pf)
	}
	if pf.KeyframeAmount != 30 || pf.ChunkAmount != 60 || pf.EndChunkID != 61 || pf.StartChunkID != 1 || pf.KeyframeInterval != 60000 {
		t.Fatalf("chunk fields mismatch: %+v", pf)
	}
	if pf.EncryptionKeyLength != uint16(len(key)) || pf.EncryptionKey != string(key) {
		t.Fatalf("key mismatch: %q (%d)", pf.EncryptionKey, pf.EncryptionKeyLength)
	}
}

func TestParsePayloadFieldsEmptyKey(t *testing.T) {
	pf, err := ParsePayloadFields(payloadHeader(nil, 0)[:PHFixedSize])
	if err != nil {
		t.Fatalf("ParsePayloadFields: %v", err)
	}
	if pf.EncryptionKey != "" {
		t.Fatalf("expected empty key, got %q", pf.EncryptionKey)
	}
}

func TestParsePayloadFieldsTruncated(t *testing.T) {
	full := payloadHeader([]byte("abcdef"), 6)
	if _, err := ParsePayloadFields(full[:PHFixedSize-1]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("short fixed fields: expected ErrTruncated, got %v", err)
	}
	if _, err := ParsePayloadFields(full[:PHFixedSize+5]); !errors.Is(err, ErrTruncated) {
		t.Fatalf("short key: expected ErrTruncated, got %v", err)
	}
	if _, err := ParsePayloadFields(payloadHeader([]byte("ab"), 200)); !errors.Is(err, ErrTruncated) {
		t.Fatalf("oversized key length: expected ErrTruncated, got %v", err)
	}
}

func TestParsePayloadFieldsInvalidUTF8(t *testing.T) {
	key := []byte{'a', 0xff, 'b'}
	pf, err := ParsePayloadFields(payloadHeader(key, 3))
	if err != nil {
		t.Fatalf("ParsePayloadFields: %v", err)
	}
	if pf.EncryptionKey != "a�b" {
		t.Fatalf("expected replacement character, got %q", pf.EncryptionKey)
	}
}
