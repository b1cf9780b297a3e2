// Package intent turns free-form customer messages into structured loan
// intent and renders decision explanations, both through a language model.
package intent

import (
	"context"
	"log/slog"

	dErrors "loangate/pkg/domain-errors"
	"loangate/pkg/jsonextract"
	"loangate/pkg/requestcontext"
)

// Completer is the single-turn language model call the service depends on.
// *anthropic.Client satisfies it.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Intent is the structured reading of a customer's loan request.
type Intent struct {
	LoanAmount    float64 `json:"loan_amount"`
	LoanPurpose   string  `json:"loan_purpose"`
	Urgency       string  `json:"urgency"`
	HasCollateral bool    `json:"has_collateral"`
}

// requiredFields must all be present in the model's JSON reply.
var requiredFields = []string{"loan_amount", "loan_purpose", "urgency", "has_collateral"}

// Service extracts intent and explains decisions.
type Service struct {
	llm    Completer
	logger *slog.Logger
}

// NewService constructs an intent service. llm may be nil when no API key is
// configured; calls then fail with upstream_unavailable.
func NewService(llm Completer, logger *slog.Logger) *Service {
	return &Service{llm: llm, logger: logger}
}

// ExtractIntent asks the model to read a customer message and returns the
// structured intent. Replies wrapped in markdown fences or prose are
// tolerated; a reply missing any required field is a validation failure.
func (s *Service) ExtractIntent(ctx context.Context, message string) (*Intent, error) {
	if s.llm == nil {
		return nil, dErrors.New(dErrors.CodeUnavailable, "language model not configured")
	}

	reply, err := s.llm.Complete(ctx, extractPrompt(message))
	if err != nil {
		return nil, err
	}

	fields, err := jsonextract.FirstObject(reply)
	if err != nil {
		s.logDegraded(ctx, "intent reply was not JSON", err)
		return nil, err
	}
	for _, field := range requiredFields {
		if _, ok := fields[field]; !ok {
			return nil, dErrors.Newf(dErrors.CodeValidation, "missing required field: %s", field)
		}
	}

	intent := &Intent{
		LoanPurpose: stringField(fields, "loan_purpose"),
		Urgency:     stringField(fields, "urgency"),
	}
	if amount, ok := fields["loan_amount"].(float64); ok {
		intent.LoanAmount = amount
	}
	if collateral, ok := fields["has_collateral"].(bool); ok {
		intent.HasCollateral = collateral
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "intent extracted",
			"request_id", requestcontext.RequestID(ctx),
			"loan_amount", intent.LoanAmount,
			"urgency", intent.Urgency,
		)
	}
	return intent, nil
}

// ExplainDecision asks the model for a customer-facing explanation of an
// assessment and lender recommendation. The reply is free text.
func (s *Service) ExplainDecision(ctx context.Context, assessment, recommendation map[string]any) (string, error) {
	if s.llm == nil {
		return "", dErrors.New(dErrors.CodeUnavailable, "language model not configured")
	}

	explanation, err := s.llm.Complete(ctx, explainPrompt(assessment, recommendation))
	if err != nil {
		return "", err
	}
	return explanation, nil
}

func (s *Service) logDegraded(ctx context.Context, msg string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.WarnContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err,
	)
}

func stringField(fields map[string]any, key string) string {
	v, _ := fields[key].(string)
	return v
}
