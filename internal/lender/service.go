package lender

import (
	"context"
	"log/slog"

	dErrors "loangate/pkg/domain-errors"
	"loangate/pkg/requestcontext"
)

// Store looks up lending partners. Defined here so the service can accept
// any backing implementation.
type Store interface {
	Match(ctx context.Context, filters Filters) ([]Lender, error)
}

// Service matches applicants with lending partners.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a lender service.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Match returns the best lending partners for the given filters. Store
// failures surface as upstream errors, never raw database faults.
func (s *Service) Match(ctx context.Context, filters Filters) ([]Lender, error) {
	if s.store == nil {
		return nil, dErrors.New(dErrors.CodeUnavailable, "lender database not configured")
	}

	lenders, err := s.store.Match(ctx, filters)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "lender match failed",
				"request_id", requestcontext.RequestID(ctx),
				"error", err,
			)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeUnavailable, "lender lookup failed")
	}
	return lenders, nil
}
