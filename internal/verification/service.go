package verification

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"loangate/internal/verification/metrics"
	"loangate/pkg/requestcontext"
)

// Service coordinates registry lookups with caching and record keeping.
// Cache and record failures are swallowed: verification is the primary
// result, persistence is a side effect.
type Service struct {
	gst     GSTClient
	pan     PANClient
	cache   Cache
	records RecordStore
	logger  *slog.Logger
	metrics *metrics.Metrics

	// recordRetention sets the expiry stamped on persisted records.
	recordRetention time.Duration
}

// NewService constructs a verification service. cache and records may be nil
// when the corresponding backend is not configured.
func NewService(gst GSTClient, pan PANClient, cache Cache, records RecordStore, logger *slog.Logger, m *metrics.Metrics, recordRetention time.Duration) *Service {
	return &Service{
		gst:             gst,
		pan:             pan,
		cache:           cache,
		records:         records,
		logger:          logger,
		metrics:         m,
		recordRetention: recordRetention,
	}
}

// VerifyGST checks a GST number against the registry, serving repeat lookups
// from cache.
func (s *Service) VerifyGST(ctx context.Context, gstNumber string) (GSTResult, error) {
	if s.cache != nil {
		cached, err := s.cache.FindGST(ctx, gstNumber)
		if err == nil {
			s.metrics.RecordCacheHit(string(KindGST))
			return *cached, nil
		}
		if !errors.Is(err, ErrNotFound) {
			s.logDegraded(ctx, "gst cache lookup failed", err)
		}
		s.metrics.RecordCacheMiss(string(KindGST))
	}

	start := time.Now()
	result, err := s.gst.Verify(ctx, gstNumber)
	s.metrics.ObserveLookupDuration(string(KindGST), time.Since(start))
	if err != nil {
		return GSTResult{}, err
	}
	s.metrics.RecordVerification(string(KindGST), result.Verified)

	if s.cache != nil {
		if err := s.cache.SaveGST(ctx, &result); err != nil {
			s.logDegraded(ctx, "gst cache save failed", err)
		}
	}
	s.persistRecord(ctx, KindGST, gstNumber, result.Verified, result, result.VerificationDate)

	return result, nil
}

// VerifyPAN checks a PAN number against the registry, serving repeat lookups
// from cache.
func (s *Service) VerifyPAN(ctx context.Context, panNumber string) (PANResult, error) {
	if s.cache != nil {
		cached, err := s.cache.FindPAN(ctx, panNumber)
		if err == nil {
			s.metrics.RecordCacheHit(string(KindPAN))
			return *cached, nil
		}
		if !errors.Is(err, ErrNotFound) {
			s.logDegraded(ctx, "pan cache lookup failed", err)
		}
		s.metrics.RecordCacheMiss(string(KindPAN))
	}

	start := time.Now()
	result, err := s.pan.Verify(ctx, panNumber)
	s.metrics.ObserveLookupDuration(string(KindPAN), time.Since(start))
	if err != nil {
		return PANResult{}, err
	}
	s.metrics.RecordVerification(string(KindPAN), result.Verified)

	if s.cache != nil {
		if err := s.cache.SavePAN(ctx, &result); err != nil {
			s.logDegraded(ctx, "pan cache save failed", err)
		}
	}
	s.persistRecord(ctx, KindPAN, panNumber, result.Verified, result, result.VerificationDate)

	return result, nil
}

// persistRecord appends an audit record; failures degrade to a warning.
func (s *Service) persistRecord(ctx context.Context, kind Kind, identifier string, verified bool, payload any, verifiedAt time.Time) {
	if s.records == nil {
		return
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		s.logDegraded(ctx, "verification record encode failed", err)
		return
	}
	record := &Record{
		ID:         uuid.NewString(),
		Kind:       kind,
		Identifier: identifier,
		Verified:   verified,
		Payload:    encoded,
		VerifiedAt: verifiedAt,
		ExpiresAt:  verifiedAt.Add(s.recordRetention),
	}
	if err := s.records.Save(ctx, record); err != nil {
		s.logDegraded(ctx, "verification record save failed", err)
	}
}

func (s *Service) logDegraded(ctx context.Context, msg string, err error) {
	if s.logger != nil {
		s.logger.WarnContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}
