package fold

import (
	"context"
	"math/bits"

	"golang.org/x/sync/errgroup"

	"github.com/signadot/mpatch/debug"
	"github.com/signadot/mpatch/frag"
)

// Parallel is Fold with the two halves of each range folded concurrently.
// Only the fan-out is concurrent: each join combines its halves once both
// are done, so the result is identical to Fold. Ranges no longer than the
// grain fold sequentially, and forking stops once WithWorkers subtrees are
// in flight.
//
// ctx is checked before each fork; a fold already running is not
// interrupted.
func Parallel(ctx context.Context, blobs [][]byte, opts ...Option) (*frag.List, error) {
	if len(blobs) == 0 {
		return nil, ErrNoDeltas
	}
	o := newOptions(opts)
	depth := bits.Len(uint(o.workers - 1))
	if debug.Fold() {
		o.logger.Debug("parallel fold", "deltas", len(blobs), "workers", o.workers, "depth", depth, "grain", o.grain)
	}
	return o.parallel(ctx, blobs, 0, len(blobs), depth)
}

func (o *options) parallel(ctx context.Context, blobs [][]byte, lo, hi, depth int) (*frag.List, error) {
	if depth == 0 || hi-lo <= o.grain {
		return o.fold(blobs, lo, hi)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	mid := lo + (hi-lo)/2
	var older, newer *frag.List
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		older, err = o.parallel(gctx, blobs, lo, mid, depth-1)
		return err
	})
	g.Go(func() error {
		var err error
		newer, err = o.parallel(gctx, blobs, mid, hi, depth-1)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return o.combine(older, newer, lo, hi), nil
}
