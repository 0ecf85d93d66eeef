package reader

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/roflkit/internal/buf"
	"github.com/joshuapare/roflkit/internal/format"
)

// errUnreadable marks a source that cannot serve random-access reads.
var errUnreadable = errors.New("source is not seekable")

// regionReader fetches exact-length regions at absolute offsets from a
// seekable source. It owns the source cursor for the duration of one parse.
type regionReader struct {
	src  io.ReadSeeker
	size int64 // -1 when the source cannot report its size
}

// newRegionReader probes src once. A nil source or one that rejects a no-op
// seek is unreadable.
func newRegionReader(src io.ReadSeeker) (*regionReader, error) {
	if src == nil {
		return nil, fmt.Errorf("nil source: %w", errUnreadable)
	}
	cur, err := src.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnreadable, err)
	}
	size := int64(-1)
	if end, err := src.Seek(0, io.SeekEnd); err == nil {
		size = end
		if _, err := src.Seek(cur, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%w: %v", errUnreadable, err)
		}
	}
	return &regionReader{src: src, size: size}, nil
}

// Region returns exactly n bytes starting at off. Regions that run past the
// end of the source fail with format.ErrTruncated; any other failure is an
// I/O error.
func (r *regionReader) Region(off, n int64) ([]byte, error) {
	if off < 0 || n < 0 {
		return nil, fmt.Errorf("region [%d,+%d): %w", off, n, format.ErrTruncated)
	}
	if !buf.Within(off, n, r.size) {
		return nil, fmt.Errorf("region [%d,+%d) exceeds source size %d: %w", off, n, r.size, format.ErrTruncated)
	}
	if _, err := r.src.Seek(off, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to %d: %w", off, err)
	}

	if r.size >= 0 {
		b := make([]byte, n)
		if _, err := io.ReadFull(r.src, b); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("region [%d,+%d): %w", off, n, format.ErrTruncated)
			}
			return nil, fmt.Errorf("read %d bytes at %d: %w", n, off, err)
		}
		return b, nil
	}

	// Unknown size: grow with the data actually present instead of trusting n.
	var out bytes.Buffer
	got, err := io.CopyN(&out, r.src, n)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read %d bytes at %d: %w", n, off, err)
	}
	if got < n {
		return nil, fmt.Errorf("region [%d,+%d) has only %d bytes: %w", off, n, got, format.ErrTruncated)
	}
	return out.Bytes(), nil
}
