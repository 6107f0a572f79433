package frag

import (
	"encoding/binary"
	"fmt"
	"math"
)

// AppendRecord appends the wire encoding of one replace record to dst. It
// fails with ErrInvalidPatch when start > end or a value does not fit the
// 32 bit header fields.
func AppendRecord(dst []byte, start, end int, data []byte) ([]byte, error) {
	if start < 0 || end < start || uint64(end) > math.MaxUint32 || uint64(len(data)) > math.MaxUint32 {
		return dst, fmt.Errorf("%w: record [%d,%d)+%d cannot be encoded", ErrInvalidPatch, start, end, len(data))
	}
	dst = binary.BigEndian.AppendUint32(dst, uint32(start))
	dst = binary.BigEndian.AppendUint32(dst, uint32(end))
	dst = binary.BigEndian.AppendUint32(dst, uint32(len(data)))
	return append(dst, data...), nil
}

// Encode returns the wire encoding of the live fragments of l. The
// fragments must be sorted and non-overlapping, as Apply requires; a
// combined list built from out of order deltas fails with ErrInvalidPatch
// rather than being encoded. The result owns its bytes.
func (l *List) Encode() ([]byte, error) {
	n, last := 0, 0
	for i, f := range l.Fragments() {
		if err := check(i, &f, last, math.MaxUint32); err != nil {
			return nil, err
		}
		n += HeaderSize + f.Len()
		last = f.End
	}
	buf := make([]byte, 0, n)
	for _, f := range l.Fragments() {
		var err error
		buf, err = AppendRecord(buf, f.Start, f.End, f.Data)
		if err != nil {
			return nil, err
		}
	}
	return buf, nil
}
