package format

import (
	"bytes"
	"fmt"
)

// CheckSignature verifies that b starts with the container magic.
func CheckSignature(b []byte) error {
	if len(b) < SignatureSize {
		return fmt.Errorf("signature: %w", ErrTruncated)
	}
	if !bytes.Equal(b[:SignatureSize], Signature) {
		return fmt.Errorf("signature %q: %w", b[:SignatureSize], ErrSignatureMismatch)
	}
	return nil
}
