package rofl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/joshuapare/roflkit/internal/mmfile"
	"github.com/joshuapare/roflkit/internal/reader"
	"github.com/joshuapare/roflkit/pkg/types"
)

// Option configures a parse.
type Option func(*types.ReadOptions)

// WithPermissive skips the length-field cross-invariant check.
func WithPermissive() Option {
	return func(o *types.ReadOptions) { o.Permissive = true }
}

// WithLogger routes per-step debug records to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *types.ReadOptions) { o.Logger = l }
}

func buildOptions(opts []Option) types.ReadOptions {
	var o types.ReadOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NewParser returns the parser for format f. Only ROFL containers have a
// parser in this module; the legacy LRF and LPR variants are reported as
// unsupported.
func NewParser(f types.Format, opts ...Option) (types.Parser, error) {
	switch f {
	case types.FormatROFL:
		return reader.New(buildOptions(opts)), nil
	case types.FormatLRF, types.FormatLPR:
		return nil, &types.Error{Kind: types.ErrKindUnsupported, Msg: fmt.Sprintf("no parser for %s replays", f)}
	default:
		return nil, &types.Error{Kind: types.ErrKindUnsupported, Msg: fmt.Sprintf("unknown replay format %d", int(f))}
	}
}

// Read parses the header of the replay in src.
func Read(ctx context.Context, src io.ReadSeeker, f types.Format, opts ...Option) (types.ReplayHeader, error) {
	p, err := NewParser(f, opts...)
	if err != nil {
		return types.ReplayHeader{}, err
	}
	return p.Parse(ctx, src)
}

// ReadBytes parses the header of the ROFL container held in data.
func ReadBytes(ctx context.Context, data []byte, opts ...Option) (types.ReplayHeader, error) {
	return Read(ctx, bytes.NewReader(data), types.FormatROFL, opts...)
}

// FormatOf infers the container format from a file name's extension.
func FormatOf(path string) (types.Format, error) {
	return types.ParseFormat(filepath.Ext(path))
}

// ReadFile maps the file at path and parses its header. The format is
// chosen by file extension.
func ReadFile(ctx context.Context, path string, opts ...Option) (types.ReplayHeader, error) {
	f, err := FormatOf(path)
	if err != nil {
		return types.ReplayHeader{}, err
	}
	p, err := NewParser(f, opts...)
	if err != nil {
		return types.ReplayHeader{}, err
	}

	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return types.ReplayHeader{}, &types.Error{Kind: types.ErrKindReadFailed, Step: "open", Msg: "open replay", Err: err}
	}
	defer func() { _ = unmap() }()

	// The header holds only copied strings, so it stays valid after unmap.
	return p.Parse(ctx, bytes.NewReader(data))
}
