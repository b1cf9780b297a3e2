package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the verification module.
type Metrics struct {
	// Cache effectiveness by record kind
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec

	// Registry lookup latency by record kind
	LookupDuration *prometheus.HistogramVec

	// Verification outcomes by kind and result
	Verifications *prometheus.CounterVec
}

// New creates a new Metrics instance with all verification metrics registered.
func New() *Metrics {
	return &Metrics{
		CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loangate_verification_cache_hits_total",
			Help: "Verification cache hits by record kind",
		}, []string{"kind"}),

		CacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loangate_verification_cache_misses_total",
			Help: "Verification cache misses by record kind",
		}, []string{"kind"}),

		LookupDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "loangate_verification_lookup_duration_seconds",
			Help:    "Duration of registry lookups by record kind",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"kind"}),

		Verifications: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loangate_verifications_total",
			Help: "Verification outcomes by record kind and result",
		}, []string{"kind", "verified"}),
	}
}

// RecordCacheHit records a cache hit for a record kind.
func (m *Metrics) RecordCacheHit(kind string) {
	if m != nil {
		m.CacheHits.WithLabelValues(kind).Inc()
	}
}

// RecordCacheMiss records a cache miss for a record kind.
func (m *Metrics) RecordCacheMiss(kind string) {
	if m != nil {
		m.CacheMisses.WithLabelValues(kind).Inc()
	}
}

// ObserveLookupDuration records a registry lookup duration.
func (m *Metrics) ObserveLookupDuration(kind string, d time.Duration) {
	if m != nil {
		m.LookupDuration.WithLabelValues(kind).Observe(d.Seconds())
	}
}

// RecordVerification records a verification outcome.
func (m *Metrics) RecordVerification(kind string, verified bool) {
	if m != nil {
		result := "false"
		if verified {
			result = "true"
		}
		m.Verifications.WithLabelValues(kind, result).Inc()
	}
}
