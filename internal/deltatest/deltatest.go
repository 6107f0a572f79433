// Package deltatest builds delta chains for tests from text revisions.
package deltatest

import (
	"math/rand"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/mpatch/frag"
)

// Diff returns a delta turning a into b, built from a character diff.
func Diff(a, b string) []byte {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(a, b, false)

	var (
		buf        []byte
		pos        int
		start, end int
		data       strings.Builder
		open       bool
	)
	flush := func() {
		if open {
			var err error
			buf, err = frag.AppendRecord(buf, start, end, []byte(data.String()))
			if err != nil {
				panic(err)
			}
			data.Reset()
			open = false
		}
	}
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			pos += len(d.Text)
		case diffmatchpatch.DiffDelete:
			if !open {
				start, end, open = pos, pos, true
			}
			pos += len(d.Text)
			end = pos
		case diffmatchpatch.DiffInsert:
			if !open {
				start, end, open = pos, pos, true
			}
			data.WriteString(d.Text)
		}
	}
	flush()
	return buf
}

const alphabet = "abcdefghijklmnopqrstuvwxyz \n"

// Edit returns s with a few random insertions, deletions and replacements.
func Edit(r *rand.Rand, s string) string {
	b := []byte(s)
	for n := 1 + r.Intn(4); n > 0; n-- {
		i := r.Intn(len(b) + 1)
		j := i + r.Intn(len(b)-i+1)
		if j-i > 8 {
			j = i + 8
		}
		ins := make([]byte, r.Intn(10))
		for k := range ins {
			ins[k] = alphabet[r.Intn(len(alphabet))]
		}
		b = append(b[:i:i], append(ins, b[j:]...)...)
	}
	return string(b)
}

// Chain returns n successive random edits of base and the deltas between
// consecutive revisions. revs[0] is base and deltas[i] turns revs[i] into
// revs[i+1].
func Chain(r *rand.Rand, base string, n int) (revs []string, deltas [][]byte) {
	revs = append(revs, base)
	for i := 0; i < n; i++ {
		next := Edit(r, revs[i])
		deltas = append(deltas, Diff(revs[i], next))
		revs = append(revs, next)
	}
	return revs, deltas
}
