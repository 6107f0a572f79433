package mpatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/signadot/mpatch/chunk"
	"github.com/signadot/mpatch/fold"
	"github.com/signadot/mpatch/frag"
)

// Patcher reconstructs texts from delta chains. A Patcher is immutable and
// safe for concurrent use.
type Patcher struct {
	logger  *slog.Logger
	workers int
	metrics *Metrics
}

// Option configures a Patcher.
type Option func(*Patcher)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Patcher) {
		p.logger = l
	}
}

// WithParallelism folds chains with up to n concurrent subtree folds.
// n <= 1 folds sequentially.
func WithParallelism(n int) Option {
	return func(p *Patcher) {
		p.workers = n
	}
}

// WithMetrics records reconstructions in m.
func WithMetrics(m *Metrics) Option {
	return func(p *Patcher) {
		p.metrics = m
	}
}

// New returns a Patcher configured by opts.
func New(opts ...Option) *Patcher {
	p := &Patcher{workers: 1}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// ApplyPatches applies deltas, ordered oldest first, to base. With no deltas
// base is returned as is.
func (p *Patcher) ApplyPatches(ctx context.Context, base []byte, deltas [][]byte) ([]byte, error) {
	if len(deltas) == 0 {
		return base, nil
	}
	start := time.Now()
	l, err := p.fold(ctx, deltas)
	if err != nil {
		p.metrics.failed(err)
		return nil, err
	}
	out, err := frag.Apply(base, l)
	if err != nil {
		p.metrics.failed(err)
		return nil, err
	}
	elapsed := time.Since(start)
	p.metrics.reconstructed(len(deltas), l.Len(), elapsed)
	p.logger.Debug("reconstructed text",
		"deltas", len(deltas),
		"fragments", l.Len(),
		"base", len(base),
		"size", len(out),
		"elapsed", elapsed)
	return out, nil
}

// ApplyChunks decompresses a stored base chunk and delta chunks and applies
// the deltas to the base.
func (p *Patcher) ApplyChunks(ctx context.Context, baseChunk []byte, deltaChunks [][]byte) ([]byte, error) {
	base, err := chunk.Decompress(baseChunk)
	if err != nil {
		p.metrics.failed(err)
		return nil, fmt.Errorf("base chunk: %w", err)
	}
	deltas := make([][]byte, len(deltaChunks))
	for i, c := range deltaChunks {
		deltas[i], err = chunk.Decompress(c)
		if err != nil {
			p.metrics.failed(err)
			return nil, fmt.Errorf("delta chunk %d: %w", i, err)
		}
	}
	return p.ApplyPatches(ctx, base, deltas)
}

func (p *Patcher) fold(ctx context.Context, deltas [][]byte) (*frag.List, error) {
	opts := []fold.Option{fold.WithLogger(p.logger)}
	if p.workers > 1 {
		opts = append(opts, fold.WithWorkers(p.workers))
		return fold.Parallel(ctx, deltas, opts...)
	}
	return fold.Fold(deltas, opts...)
}
