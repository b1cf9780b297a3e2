package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the eligibility module.
type Metrics struct {
	// Decision outcomes by decision and risk rating
	DecisionOutcome *prometheus.CounterVec

	// Full assessment latency
	AssessLatency prometheus.Histogram
}

// New creates a new Metrics instance with all eligibility metrics registered.
func New() *Metrics {
	return &Metrics{
		DecisionOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "loangate_eligibility_decisions_total",
			Help: "Total eligibility decisions by outcome and risk rating",
		}, []string{"decision", "risk_rating"}),

		AssessLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "loangate_eligibility_assess_duration_seconds",
			Help:    "Duration of a full eligibility assessment",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		}),
	}
}

// IncrementDecision records a decision outcome.
func (m *Metrics) IncrementDecision(decision, riskRating string) {
	if m != nil {
		m.DecisionOutcome.WithLabelValues(decision, riskRating).Inc()
	}
}

// ObserveAssessLatency records the assessment duration.
func (m *Metrics) ObserveAssessLatency(d time.Duration) {
	if m != nil {
		m.AssessLatency.Observe(d.Seconds())
	}
}
