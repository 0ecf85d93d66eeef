package format

import "errors"

var (
	// ErrSignatureMismatch indicates the container had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrInconsistentLayout indicates the length-field table describes
	// overlapping or out-of-order regions.
	ErrInconsistentLayout = errors.New("format: inconsistent layout")
	// ErrInvalidMetadata indicates the metadata JSON could not be decoded.
	ErrInvalidMetadata = errors.New("format: invalid metadata")
)
