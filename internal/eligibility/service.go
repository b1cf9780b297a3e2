package eligibility

import (
	"context"
	"log/slog"
	"time"

	"loangate/internal/eligibility/metrics"
	"loangate/pkg/requestcontext"
)

// Service wraps the pure rules with logging and metrics. It holds no state
// and no dependencies beyond observability; concurrent use needs no
// coordination.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewService constructs an eligibility service.
func NewService(logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{logger: logger, metrics: m}
}

// Evaluate resolves input defaults, runs the underwriting policy, and records
// the outcome. It never fails: every input field has a defined default.
func (s *Service) Evaluate(ctx context.Context, input Input) Result {
	start := time.Now()

	profile := input.Profile()
	result := Assess(profile, requestcontext.Now(ctx))

	s.metrics.IncrementDecision(string(result.Decision), string(result.RiskRating))
	s.metrics.ObserveAssessLatency(time.Since(start))

	if s.logger != nil {
		s.logger.InfoContext(ctx, "eligibility assessed",
			"request_id", requestcontext.RequestID(ctx),
			"decision", result.Decision,
			"risk_rating", result.RiskRating,
			"dti_ratio", result.DTIRatio,
			"approved_amount", result.ApprovedAmount,
		)
	}

	return result
}
