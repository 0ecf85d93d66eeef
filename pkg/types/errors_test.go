package types

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesKind(t *testing.T) {
	err := &Error{Kind: ErrKindTruncated, Step: "parse-metadata", Offset: 288, Length: 1024, Msg: "region truncated"}
	wrapped := fmt.Errorf("reading replay: %w", err)

	assert.ErrorIs(t, wrapped, ErrTruncated)
	assert.NotErrorIs(t, wrapped, ErrNotAContainer)

	var te *Error
	require.ErrorAs(t, wrapped, &te)
	assert.Equal(t, "parse-metadata", te.Step)
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Kind: ErrKindReadFailed, Step: "validate-magic", Offset: 0, Length: 4, Msg: "read failed", Err: io.ErrUnexpectedEOF}
	assert.Equal(t, "validate-magic: read failed (offset 0, length 4): unexpected EOF", err.Error())
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	bare := &Error{Kind: ErrKindUnsupported, Msg: "no parser"}
	assert.Equal(t, "no parser", bare.Error())

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestErrKindGroups(t *testing.T) {
	assert.True(t, ErrKindUnreadable.IsIO())
	assert.True(t, ErrKindReadFailed.IsIO())
	assert.False(t, ErrKindTruncated.IsIO())

	for _, k := range []ErrKind{ErrKindNotAContainer, ErrKindTruncated, ErrKindInconsistentLayout, ErrKindInvalidMetadataJSON, ErrKindInvalidStatValue} {
		assert.True(t, k.IsFormat(), k.String())
	}
	assert.False(t, ErrKindUnsupported.IsFormat())
	assert.False(t, ErrKindReadFailed.IsFormat())
	assert.Equal(t, "ErrKind(42)", ErrKind(42).String())
}

func TestSentinelsAreDistinct(t *testing.T) {
	all := []*Error{ErrUnreadable, ErrReadFailed, ErrNotAContainer, ErrTruncated, ErrInconsistentLayout, ErrInvalidMetadataJSON, ErrInvalidStatValue, ErrUnsupported}
	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, errors.Is(a, b), "%s vs %s", a.Kind, b.Kind)
		}
	}
}
