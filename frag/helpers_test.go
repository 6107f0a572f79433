package frag

import (
	"math/rand"
	"testing"
)

func delta(recs ...Fragment) []byte {
	var buf []byte
	for _, r := range recs {
		buf = appendRecord(buf, r.Start, r.End, r.Data)
	}
	return buf
}

func appendRecord(dst []byte, start, end int, data []byte) []byte {
	dst, err := AppendRecord(dst, start, end, data)
	if err != nil {
		panic(err)
	}
	return dst
}

func rec(start, end int, data string) Fragment {
	return Fragment{Start: start, End: end, Data: []byte(data)}
}

// randomDelta returns a well formed delta against a document of length
// baseLen.
func randomDelta(r *rand.Rand, baseLen int) []byte {
	var buf []byte
	pos := 0
	for pos <= baseLen && r.Intn(4) != 0 {
		start := pos + r.Intn(baseLen-pos+1)
		end := start + r.Intn(baseLen-start+1)
		data := make([]byte, r.Intn(6))
		for i := range data {
			data[i] = byte('a' + r.Intn(26))
		}
		buf = appendRecord(buf, start, end, data)
		pos = end
		if pos == baseLen {
			break
		}
		pos++
	}
	return buf
}

func mustDecode(t *testing.T, blob []byte) *List {
	t.Helper()
	l, err := Decode(blob)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return l
}

func mustApply(t *testing.T, base []byte, l *List) []byte {
	t.Helper()
	out, err := Apply(base, l)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	return out
}
