package eligibility

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"loangate/pkg/requestcontext"
)

func TestServiceEvaluate(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewService(logger, nil)

	requested := 5000000.0
	score := 750
	compliance := 0.84
	input := Input{
		AnnualTurnover:        24148440.33,
		ExistingDebt:          2710443,
		RequestedAmount:       &requested,
		CreditScoreNumeric:    &score,
		FilingComplianceScore: &compliance,
	}

	t.Run("uses request-scoped time", func(t *testing.T) {
		fixed := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
		ctx := requestcontext.WithTime(context.Background(), fixed)

		result := service.Evaluate(ctx, input)
		assert.Equal(t, fixed, result.AssessedAt)
		assert.Equal(t, DecisionApproved, result.Decision)
	})

	t.Run("identical input yields identical output", func(t *testing.T) {
		ctx := requestcontext.WithTime(context.Background(), time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC))
		assert.Equal(t, service.Evaluate(ctx, input), service.Evaluate(ctx, input))
	})
}
