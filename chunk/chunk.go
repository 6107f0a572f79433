// Package chunk encodes and decodes stored revision chunks.
//
// A chunk is a full text or a delta as kept on disk. Its first byte tells how
// it is stored:
//
//   - empty: the empty text
//   - 0x00: stored as is, the text starts with a NUL byte
//   - 'u': stored as is after the marker byte
//   - 'x': a zlib stream (the zlib header starts with 'x')
//   - '(': a zstd frame (the zstd magic starts with 0x28)
package chunk

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// Engine selects the compression used by Compress.
type Engine int

const (
	Zlib Engine = iota
	Zstd
)

func (e Engine) String() string {
	switch e {
	case Zlib:
		return "zlib"
	case Zstd:
		return "zstd"
	}
	return fmt.Sprintf("Engine(%d)", int(e))
}

const (
	markerRaw  = 0x00
	markerText = 'u'
	markerZlib = 'x'
	markerZstd = 0x28

	// texts shorter than this are never worth compressing
	minCompress = 44
)

// MaxSize bounds the text Decompress will produce.
const MaxSize = 1 << 30

// lower bound on the zstd window the decoder accepts
const minWindow = 1 << 20

var (
	// ErrUnknownCompression is returned for a chunk whose first byte is not
	// a known marker.
	ErrUnknownCompression = errors.New("unknown chunk compression")
	// ErrDecompress wraps codec failures.
	ErrDecompress = errors.New("chunk decompression failed")
	// ErrTooLarge is returned when a compressed chunk expands past the limit.
	ErrTooLarge = errors.New("decompressed chunk too large")
)

// Shared encoder, safe for concurrent use.
var zstdEncoder, _ = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))

// Compress returns the chunk form of text, compressed with e when that makes
// it smaller.
func Compress(text []byte, e Engine) []byte {
	if len(text) == 0 {
		return nil
	}
	var packed []byte
	if len(text) >= minCompress {
		packed = compress(text, e)
	}
	if packed != nil && len(packed) < len(text) {
		return packed
	}
	if text[0] == markerRaw {
		return text
	}
	res := make([]byte, 0, len(text)+1)
	res = append(res, markerText)
	return append(res, text...)
}

func compress(text []byte, e Engine) []byte {
	switch e {
	case Zstd:
		return zstdEncoder.EncodeAll(text, nil)
	default:
		var buf bytes.Buffer
		w := zlib.NewWriter(&buf)
		if _, err := w.Write(text); err != nil {
			return nil
		}
		if err := w.Close(); err != nil {
			return nil
		}
		return buf.Bytes()
	}
}

// Decompress returns the text stored in chunk. Stored chunks are returned
// without copying. Compressed chunks may expand to at most MaxSize bytes.
func Decompress(chunk []byte) ([]byte, error) {
	return DecompressLimit(chunk, MaxSize)
}

// DecompressLimit is Decompress with compressed chunks bounded to limit
// bytes of text. A chunk that would expand further fails with ErrTooLarge.
func DecompressLimit(chunk []byte, limit int) ([]byte, error) {
	if len(chunk) == 0 {
		return chunk, nil
	}
	switch chunk[0] {
	case markerRaw:
		return chunk, nil
	case markerText:
		return chunk[1:], nil
	case markerZlib:
		r, err := zlib.NewReader(bytes.NewReader(chunk))
		if err != nil {
			return nil, fmt.Errorf("%w: zlib: %w", ErrDecompress, err)
		}
		defer r.Close()
		out, err := readLimit(r, limit)
		if err != nil {
			return nil, fmt.Errorf("zlib: %w", err)
		}
		return out, nil
	case markerZstd:
		d, err := zstd.NewReader(bytes.NewReader(chunk),
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderMaxMemory(uint64(max(limit, minWindow))))
		if err != nil {
			return nil, fmt.Errorf("%w: zstd: %w", ErrDecompress, err)
		}
		defer d.Close()
		out, err := readLimit(d, limit)
		switch {
		case errors.Is(err, zstd.ErrDecoderSizeExceeded), errors.Is(err, zstd.ErrWindowSizeExceeded):
			return nil, fmt.Errorf("%w: zstd: %w", ErrTooLarge, err)
		case err != nil:
			return nil, fmt.Errorf("zstd: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: marker %q", ErrUnknownCompression, chunk[0])
}

func readLimit(r io.Reader, limit int) ([]byte, error) {
	out, err := io.ReadAll(io.LimitReader(r, int64(limit)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompress, err)
	}
	if len(out) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return out, nil
}
