// Package fold reduces a chain of deltas to a single fragment list.
//
// The chain is split at its midpoint and each half folded recursively before
// the halves are combined, so every fragment passes through O(log N)
// combines instead of O(N).
package fold

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/signadot/mpatch/debug"
	"github.com/signadot/mpatch/frag"
)

// ErrNoDeltas is returned when asked to fold an empty chain. Callers treat
// zero deltas as the identity before folding.
var ErrNoDeltas = errors.New("no deltas to fold")

type options struct {
	logger  *slog.Logger
	workers int
	grain   int
}

// Option configures a fold.
type Option func(*options)

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithWorkers bounds the number of concurrent subtree folds in Parallel.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithGrain sets the chain length at or below which Parallel folds
// sequentially.
func WithGrain(n int) Option {
	return func(o *options) {
		o.grain = n
	}
}

func newOptions(opts []Option) *options {
	o := &options{workers: 1, grain: 16}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.workers < 1 {
		o.workers = 1
	}
	if o.grain < 1 {
		o.grain = 1
	}
	return o
}

// Fold decodes and combines blobs, ordered oldest first, into one list
// equivalent to applying them in sequence. The result borrows from blobs.
func Fold(blobs [][]byte, opts ...Option) (*frag.List, error) {
	if len(blobs) == 0 {
		return nil, ErrNoDeltas
	}
	o := newOptions(opts)
	if debug.Fold() {
		o.logger.Debug("fold", "deltas", len(blobs))
	}
	return o.fold(blobs, 0, len(blobs))
}

func (o *options) fold(blobs [][]byte, lo, hi int) (*frag.List, error) {
	if lo+1 == hi {
		return o.decode(blobs, lo)
	}
	mid := lo + (hi-lo)/2
	older, err := o.fold(blobs, lo, mid)
	if err != nil {
		return nil, err
	}
	newer, err := o.fold(blobs, mid, hi)
	if err != nil {
		return nil, err
	}
	return o.combine(older, newer, lo, hi), nil
}

func (o *options) decode(blobs [][]byte, i int) (*frag.List, error) {
	l, err := frag.Decode(blobs[i])
	if err != nil {
		return nil, fmt.Errorf("delta %d: %w", i, err)
	}
	if debug.Decode() {
		o.logger.Debug("decoded delta", "index", i, "bytes", len(blobs[i]), "fragments", l.Len())
	}
	return l, nil
}

func (o *options) combine(older, newer *frag.List, lo, hi int) *frag.List {
	na, nb := older.Len(), newer.Len()
	res := frag.Combine(older, newer)
	if debug.Combine() {
		o.logger.Debug("combined deltas", "from", lo, "to", hi, "older", na, "newer", nb, "fragments", res.Len())
	}
	return res
}
