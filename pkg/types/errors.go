package types

import (
	"fmt"
	"strings"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindUnreadable          ErrKind = iota // source does not support reads/seeks
	ErrKindReadFailed                         // underlying read or seek failed
	ErrKindNotAContainer                      // magic mismatch (not "RIOT")
	ErrKindTruncated                          // region shorter than declared/expected
	ErrKindInconsistentLayout                 // length-field cross invariants violated
	ErrKindInvalidMetadataJSON                // outer/inner JSON malformed or missing fields
	ErrKindInvalidStatValue                   // stat needed for inference is not numeric
	ErrKindUnsupported                        // format variant without a parser
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindUnreadable:
		return "unreadable"
	case ErrKindReadFailed:
		return "read failed"
	case ErrKindNotAContainer:
		return "not a container"
	case ErrKindTruncated:
		return "truncated"
	case ErrKindInconsistentLayout:
		return "inconsistent layout"
	case ErrKindInvalidMetadataJSON:
		return "invalid metadata json"
	case ErrKindInvalidStatValue:
		return "invalid stat value"
	case ErrKindUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// IsIO reports whether k belongs to the I/O group.
func (k ErrKind) IsIO() bool {
	return k == ErrKindUnreadable || k == ErrKindReadFailed
}

// IsFormat reports whether k describes a malformed container.
func (k ErrKind) IsFormat() bool {
	return k >= ErrKindNotAContainer && k <= ErrKindInvalidStatValue
}

// Error is a typed error with an optional underlying cause. Step names the
// parse step that failed; Offset and Length describe the region involved
// when Length is non-zero.
type Error struct {
	Kind   ErrKind
	Step   string
	Offset int64
	Length int64
	Msg    string
	Err    error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	var sb strings.Builder
	if e.Step != "" {
		sb.WriteString(e.Step)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Msg)
	if e.Length != 0 {
		fmt.Fprintf(&sb, " (offset %d, length %d)", e.Offset, e.Length)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrTruncated)
// holds regardless of which step produced the truncation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrUnreadable          = &Error{Kind: ErrKindUnreadable, Msg: "source does not support random-access reads"}
	ErrReadFailed          = &Error{Kind: ErrKindReadFailed, Msg: "read failed"}
	ErrNotAContainer       = &Error{Kind: ErrKindNotAContainer, Msg: "not a ROFL container (bad magic)"}
	ErrTruncated           = &Error{Kind: ErrKindTruncated, Msg: "region truncated"}
	ErrInconsistentLayout  = &Error{Kind: ErrKindInconsistentLayout, Msg: "inconsistent length-field layout"}
	ErrInvalidMetadataJSON = &Error{Kind: ErrKindInvalidMetadataJSON, Msg: "invalid metadata json"}
	ErrInvalidStatValue    = &Error{Kind: ErrKindInvalidStatValue, Msg: "invalid stat value"}
	ErrUnsupported         = &Error{Kind: ErrKindUnsupported, Msg: "unsupported replay format"}
)
