package mpatch

import (
	"context"
	"encoding/binary"

	"github.com/signadot/mpatch/fold"
	"github.com/signadot/mpatch/frag"
)

var (
	ErrMalformedDelta = frag.ErrMalformedDelta
	ErrInvalidPatch   = frag.ErrInvalidPatch
)

var std = New()

// ApplyPatches applies deltas, ordered oldest first, to base. With no deltas
// base is returned as is. The deltas must not be modified during the call.
func ApplyPatches(base []byte, deltas [][]byte) ([]byte, error) {
	return std.ApplyPatches(context.Background(), base, deltas)
}

// Patch applies a single delta to base.
func Patch(base, delta []byte) ([]byte, error) {
	return std.ApplyPatches(context.Background(), base, [][]byte{delta})
}

// PatchedSize returns the length of the text produced by applying delta to
// a base of length baseLen, without decoding it into fragments.
func PatchedSize(baseLen int, delta []byte) (int, error) {
	return frag.PatchedSize(baseLen, delta)
}

// PatchText returns the replacement data of delta concatenated.
func PatchText(delta []byte) ([]byte, error) {
	l, err := frag.Decode(delta)
	if err != nil {
		return nil, err
	}
	n := 0
	for _, f := range l.Fragments() {
		n += f.Len()
	}
	res := make([]byte, 0, n)
	for _, f := range l.Fragments() {
		res = append(res, f.Data...)
	}
	return res, nil
}

// TrivialHeader returns the header of a delta inserting n bytes into an
// empty text. Followed by the n bytes it stores a full text as a delta.
func TrivialHeader(n int) []byte {
	h := make([]byte, frag.HeaderSize)
	binary.BigEndian.PutUint32(h[8:], uint32(n))
	return h
}

// CombineDeltas folds deltas into one delta with the same effect and
// returns its wire encoding. No deltas yields the empty delta. A chain whose
// combination is not a sorted, non-overlapping delta fails with
// ErrInvalidPatch.
func CombineDeltas(deltas [][]byte) ([]byte, error) {
	if len(deltas) == 0 {
		return nil, nil
	}
	l, err := fold.Fold(deltas)
	if err != nil {
		return nil, err
	}
	return l.Encode()
}
