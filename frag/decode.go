package frag

import (
	"encoding/binary"
	"fmt"
	"math"
)

// HeaderSize is the size of a record header: start, end and len as
// big-endian uint32s.
const HeaderSize = 12

// header is one decoded record header. pos is the offset of the record in
// the blob and next the offset just past its data.
type header struct {
	start, end, n int
	pos, next     int
}

// readHeader decodes the record at pos. It reports ok=false when blob is
// exhausted at pos.
func readHeader(blob []byte, pos int) (h header, ok bool, err error) {
	if pos == len(blob) {
		return h, false, nil
	}
	if len(blob)-pos < HeaderSize {
		return h, false, fmt.Errorf("%w: %d trailing bytes at offset %d", ErrMalformedDelta, len(blob)-pos, pos)
	}
	start := binary.BigEndian.Uint32(blob[pos:])
	end := binary.BigEndian.Uint32(blob[pos+4:])
	n := binary.BigEndian.Uint32(blob[pos+8:])
	if start > end {
		return h, false, fmt.Errorf("%w: record at offset %d has start %d > end %d", ErrMalformedDelta, pos, start, end)
	}
	data := pos + HeaderSize
	// compare against the remaining length so a bogus len cannot wrap
	if uint64(n) > uint64(len(blob)-data) {
		return h, false, fmt.Errorf("%w: record at offset %d declares %d data bytes, %d remain", ErrMalformedDelta, pos, n, len(blob)-data)
	}
	if uint64(end) > math.MaxInt {
		return h, false, fmt.Errorf("%w: record at offset %d has end %d beyond addressable range", ErrMalformedDelta, pos, end)
	}
	return header{
		start: int(start),
		end:   int(end),
		n:     int(n),
		pos:   pos,
		next:  data + int(n),
	}, true, nil
}

// Decode parses a delta blob into a fragment list. The fragments reference
// blob in place.
func Decode(blob []byte) (*List, error) {
	l := NewList(len(blob) / HeaderSize)
	pos := 0
	for {
		h, ok, err := readHeader(blob, pos)
		if err != nil {
			return nil, err
		}
		if !ok {
			return l, nil
		}
		data := h.pos + HeaderSize
		l.push(Fragment{
			Start: h.start,
			End:   h.end,
			Data:  blob[data:h.next:h.next],
		})
		pos = h.next
	}
}
