// Package reader provides the concrete ROFL container parser. The public
// rofl package wraps it behind the types.Parser capability interface.
package reader

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/joshuapare/roflkit/internal/format"
	"github.com/joshuapare/roflkit/internal/infer"
	"github.com/joshuapare/roflkit/pkg/types"
)

// Parse steps, in execution order. Each failure carries the step name.
const (
	StepValidateReadable   = "validate-readable"
	StepValidateMagic      = "validate-magic"
	StepParseLengthFields  = "parse-length-fields"
	StepParseMetadata      = "parse-metadata"
	StepParsePayloadHeader = "parse-payload-header"
	StepInfer              = "infer"
)

// Parser decodes ROFL containers. It holds only immutable options, so one
// Parser can serve concurrent parses of independent sources.
type Parser struct {
	opts types.ReadOptions
	log  *slog.Logger
}

// New returns a Parser configured by opts.
func New(opts types.ReadOptions) *Parser {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{opts: opts, log: log}
}

// Format reports the variant handled by p.
func (p *Parser) Format() types.Format { return types.FormatROFL }

// Parse runs the container state machine over src:
//
//	validate-readable -> validate-magic -> parse-length-fields ->
//	parse-metadata -> parse-payload-header -> infer
//
// The first failing step aborts the parse; no partial header is returned.
func (p *Parser) Parse(ctx context.Context, src io.ReadSeeker) (types.ReplayHeader, error) {
	rr, err := newRegionReader(src)
	if err != nil {
		return types.ReplayHeader{}, &types.Error{Kind: types.ErrKindUnreadable, Step: StepValidateReadable, Msg: "source is unreadable", Err: err}
	}
	p.log.Debug("step complete", "step", StepValidateReadable, "size", rr.size)

	if err := p.validateMagic(ctx, rr); err != nil {
		return types.ReplayHeader{}, err
	}
	lf, err := p.lengthFields(ctx, rr)
	if err != nil {
		return types.ReplayHeader{}, err
	}
	md, err := p.metadata(ctx, rr, lf)
	if err != nil {
		return types.ReplayHeader{}, err
	}
	pf, err := p.payloadFields(ctx, rr, lf)
	if err != nil {
		return types.ReplayHeader{}, err
	}

	inferred, err := infer.Details(md)
	if err != nil {
		return types.ReplayHeader{}, wrapFormatErr(StepInfer, 0, 0, err)
	}
	p.log.Debug("step complete", "step", StepInfer, "map", inferred.MapID.String(), "blue_victory", inferred.BlueVictory)

	return types.ReplayHeader{
		LengthFields:  lf,
		MatchMetadata: md,
		PayloadFields: pf,
		InferredData:  inferred,
	}, nil
}

func (p *Parser) validateMagic(ctx context.Context, rr *regionReader) error {
	b, err := read(ctx, rr, StepValidateMagic, format.SignatureOffset, format.SignatureSize)
	if err != nil {
		return err
	}
	if err := format.CheckSignature(b); err != nil {
		return wrapFormatErr(StepValidateMagic, format.SignatureOffset, format.SignatureSize, err)
	}
	p.log.Debug("step complete", "step", StepValidateMagic)
	return nil
}

func (p *Parser) lengthFields(ctx context.Context, rr *regionReader) (types.LengthFields, error) {
	b, err := read(ctx, rr, StepParseLengthFields, format.LengthFieldsOffset, format.LengthFieldsSize)
	if err != nil {
		return types.LengthFields{}, err
	}
	lf, err := format.ParseLengthFields(b)
	if err != nil {
		return types.LengthFields{}, wrapFormatErr(StepParseLengthFields, format.LengthFieldsOffset, format.LengthFieldsSize, err)
	}
	if !p.opts.Permissive {
		if err := format.ValidateLayout(lf); err != nil {
			return types.LengthFields{}, wrapFormatErr(StepParseLengthFields, format.LengthFieldsOffset, format.LengthFieldsSize, err)
		}
	}
	p.log.Debug("step complete", "step", StepParseLengthFields,
		"metadata_offset", lf.MetadataOffset, "metadata_length", lf.MetadataLength,
		"payload_header_offset", lf.PayloadHeaderOffset, "payload_header_length", lf.PayloadHeaderLength)
	return lf, nil
}

func (p *Parser) metadata(ctx context.Context, rr *regionReader, lf types.LengthFields) (types.MatchMetadata, error) {
	off, n := int64(lf.MetadataOffset), int64(lf.MetadataLength)
	b, err := read(ctx, rr, StepParseMetadata, off, n)
	if err != nil {
		return types.MatchMetadata{}, err
	}
	md, err := format.ParseMetadata(b)
	if err != nil {
		return types.MatchMetadata{}, wrapFormatErr(StepParseMetadata, off, n, err)
	}
	p.log.Debug("step complete", "step", StepParseMetadata,
		"game_version", md.GameVersion, "blue", len(md.BluePlayers), "red", len(md.RedPlayers))
	return md, nil
}

func (p *Parser) payloadFields(ctx context.Context, rr *regionReader, lf types.LengthFields) (types.PayloadFields, error) {
	off, n := int64(lf.PayloadHeaderOffset), int64(lf.PayloadHeaderLength)
	b, err := read(ctx, rr, StepParsePayloadHeader, off, n)
	if err != nil {
		return types.PayloadFields{}, err
	}
	pf, err := format.ParsePayloadFields(b)
	if err != nil {
		return types.PayloadFields{}, wrapFormatErr(StepParsePayloadHeader, off, n, err)
	}
	p.log.Debug("step complete", "step", StepParsePayloadHeader, "match_id", pf.MatchID)
	return pf, nil
}

// read is the only suspension point of a parse: ctx is consulted before
// every region fetch and nowhere else.
func read(ctx context.Context, rr *regionReader, step string, off, n int64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &types.Error{Kind: types.ErrKindReadFailed, Step: step, Offset: off, Length: n, Msg: "parse canceled", Err: err}
	}
	b, err := rr.Region(off, n)
	if err != nil {
		return nil, wrapFormatErr(step, off, n, err)
	}
	return b, nil
}

func wrapFormatErr(step string, off, n int64, err error) error {
	e := &types.Error{Step: step, Offset: off, Length: n, Err: err}
	var statErr *infer.StatError
	switch {
	case errors.Is(err, format.ErrSignatureMismatch):
		e.Kind, e.Msg = types.ErrKindNotAContainer, types.ErrNotAContainer.Msg
	case errors.Is(err, format.ErrTruncated):
		e.Kind, e.Msg = types.ErrKindTruncated, types.ErrTruncated.Msg
	case errors.Is(err, format.ErrInconsistentLayout):
		e.Kind, e.Msg = types.ErrKindInconsistentLayout, types.ErrInconsistentLayout.Msg
	case errors.Is(err, format.ErrInvalidMetadata):
		e.Kind, e.Msg = types.ErrKindInvalidMetadataJSON, types.ErrInvalidMetadataJSON.Msg
	case errors.As(err, &statErr):
		e.Kind, e.Msg = types.ErrKindInvalidStatValue, types.ErrInvalidStatValue.Msg
	default:
		e.Kind, e.Msg = types.ErrKindReadFailed, types.ErrReadFailed.Msg
	}
	return e
}
