package mpatch

import (
	"bytes"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/signadot/mpatch/frag"
	"github.com/signadot/mpatch/internal/deltatest"
)

func record(start, end int, data string) []byte {
	d, err := frag.AppendRecord(nil, start, end, []byte(data))
	if err != nil {
		panic(err)
	}
	return d
}

func TestApplyPatchesIdentity(t *testing.T) {
	for _, base := range []string{"", "x", "HELLO WORLD"} {
		got, err := ApplyPatches([]byte(base), nil)
		if err != nil {
			t.Fatalf("ApplyPatches() error = %v", err)
		}
		if string(got) != base {
			t.Errorf("ApplyPatches(%q, nil) = %q", base, got)
		}
	}
}

func TestApplyPatchesSingle(t *testing.T) {
	got, err := ApplyPatches([]byte("ABCDEF"), [][]byte{record(2, 4, "XYZ")})
	if err != nil {
		t.Fatalf("ApplyPatches() error = %v", err)
	}
	if string(got) != "ABXYZEF" {
		t.Errorf("ApplyPatches() = %q, want %q", got, "ABXYZEF")
	}
}

func TestApplyPatchesChain(t *testing.T) {
	deltas := [][]byte{
		record(6, 11, "THERE"),
		record(0, 5, "HI"),
	}
	got, err := ApplyPatches([]byte("HELLO WORLD"), deltas)
	if err != nil {
		t.Fatalf("ApplyPatches() error = %v", err)
	}
	if string(got) != "HI THERE" {
		t.Errorf("ApplyPatches() = %q, want %q", got, "HI THERE")
	}
}

func TestPatch(t *testing.T) {
	delta := []byte("\x00\x00\x00\t\x00\x00\x00\x11\x00\x00\x00\ni'm stupid")
	got, err := Patch([]byte("hi there\ni'm cool"), delta)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if want := "hi there\ni'm stupid"; string(got) != want {
		t.Errorf("Patch() = %q, want %q", got, want)
	}
}

func TestApplyPatchesMatchesSequential(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for n := 1; n <= 25; n++ {
		revs, deltas := deltatest.Chain(r, strings.Repeat("some revision text\n", 4), n)
		seq := []byte(revs[0])
		for i, d := range deltas {
			var err error
			seq, err = Patch(seq, d)
			if err != nil {
				t.Fatalf("n=%d: Patch(delta %d) error = %v", n, i, err)
			}
		}
		got, err := ApplyPatches([]byte(revs[0]), deltas)
		if err != nil {
			t.Fatalf("n=%d: ApplyPatches() error = %v", n, err)
		}
		if !bytes.Equal(got, seq) || string(got) != revs[n] {
			t.Errorf("n=%d: ApplyPatches() = %q, sequential %q, want %q", n, got, seq, revs[n])
		}
	}
}

func TestPatchedSizeAgrees(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	for i := 0; i < 200; i++ {
		base := deltatest.Edit(r, "base text for size checks")
		next := deltatest.Edit(r, base)
		d := deltatest.Diff(base, next)
		size, err := PatchedSize(len(base), d)
		if err != nil {
			t.Fatalf("PatchedSize() error = %v", err)
		}
		out, err := ApplyPatches([]byte(base), [][]byte{d})
		if err != nil {
			t.Fatalf("ApplyPatches() error = %v", err)
		}
		if size != len(out) {
			t.Fatalf("PatchedSize() = %d, len(ApplyPatches()) = %d", size, len(out))
		}
	}
}

func TestApplyPatchesErrors(t *testing.T) {
	overlap := append(record(0, 3, "a"), record(2, 4, "b")...)
	tests := []struct {
		name   string
		deltas [][]byte
		want   error
	}{
		{"overlap", [][]byte{overlap}, ErrInvalidPatch},
		{"past end", [][]byte{record(0, 20, "")}, ErrInvalidPatch},
		{"truncated", [][]byte{record(0, 1, "abcdef")[:15]}, ErrMalformedDelta},
		{"truncated in chain", [][]byte{record(0, 1, "a"), record(0, 1, "a")[:5]}, ErrMalformedDelta},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ApplyPatches([]byte("ABCDEF"), tt.deltas)
			if !errors.Is(err, tt.want) {
				t.Errorf("ApplyPatches() error = %v, want %v", err, tt.want)
			}
			if out != nil {
				t.Errorf("ApplyPatches() = %q on error", out)
			}
		})
	}
}

func TestPatchText(t *testing.T) {
	d := append(record(0, 1, "ab"), record(3, 5, "cd")...)
	got, err := PatchText(d)
	if err != nil {
		t.Fatalf("PatchText() error = %v", err)
	}
	if string(got) != "abcd" {
		t.Errorf("PatchText() = %q, want %q", got, "abcd")
	}
}

func TestTrivialHeader(t *testing.T) {
	text := "full text"
	d := append(TrivialHeader(len(text)), text...)
	got, err := Patch(nil, d)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if string(got) != text {
		t.Errorf("Patch() = %q, want %q", got, text)
	}
}

func TestCombineDeltas(t *testing.T) {
	r := rand.New(rand.NewSource(17))
	revs, deltas := deltatest.Chain(r, "combine these deltas into one", 9)
	d, err := CombineDeltas(deltas)
	if err != nil {
		t.Fatalf("CombineDeltas() error = %v", err)
	}
	got, err := Patch([]byte(revs[0]), d)
	if err != nil {
		t.Fatalf("Patch() error = %v", err)
	}
	if string(got) != revs[len(revs)-1] {
		t.Errorf("Patch(combined) = %q, want %q", got, revs[len(revs)-1])
	}

	empty, err := CombineDeltas(nil)
	if err != nil || len(empty) != 0 {
		t.Errorf("CombineDeltas(nil) = %q, %v, want empty delta", empty, err)
	}
}

func TestCombineDeltasUnsorted(t *testing.T) {
	deltas := [][]byte{
		record(0, 0, "abcdefgh"),
		append(record(9, 9, ""), record(0, 0, "x")...),
	}
	d, err := CombineDeltas(deltas)
	if !errors.Is(err, ErrInvalidPatch) {
		t.Fatalf("CombineDeltas() = %x, %v, want %v", d, err, ErrInvalidPatch)
	}
	if _, err := ApplyPatches(nil, deltas); !errors.Is(err, ErrInvalidPatch) {
		t.Errorf("ApplyPatches() error = %v, want %v", err, ErrInvalidPatch)
	}
}
