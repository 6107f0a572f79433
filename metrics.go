package mpatch

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/signadot/mpatch/chunk"
)

// Metrics holds the prometheus collectors updated by a Patcher. A nil
// *Metrics records nothing.
type Metrics struct {
	results   *prometheus.CounterVec
	deltas    prometheus.Histogram
	fragments prometheus.Histogram
	duration  prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mpatch_reconstructions_total",
			Help: "Reconstructions by result: ok, malformed, invalid, chunk or error.",
		}, []string{"result"}),
		deltas: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mpatch_chain_deltas",
			Help:    "Number of deltas folded per reconstruction.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		fragments: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mpatch_combined_fragments",
			Help:    "Number of fragments in the combined delta applied per reconstruction.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mpatch_reconstruction_duration_seconds",
			Help:    "Time spent folding and applying a delta chain.",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
	reg.MustRegister(m.results, m.deltas, m.fragments, m.duration)
	return m
}

func (m *Metrics) reconstructed(deltas, fragments int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.results.WithLabelValues("ok").Inc()
	m.deltas.Observe(float64(deltas))
	m.fragments.Observe(float64(fragments))
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) failed(err error) {
	if m == nil {
		return
	}
	m.results.WithLabelValues(resultOf(err)).Inc()
}

func resultOf(err error) string {
	switch {
	case errors.Is(err, ErrMalformedDelta):
		return "malformed"
	case errors.Is(err, ErrInvalidPatch):
		return "invalid"
	case errors.Is(err, chunk.ErrUnknownCompression), errors.Is(err, chunk.ErrDecompress):
		return "chunk"
	}
	return "error"
}
