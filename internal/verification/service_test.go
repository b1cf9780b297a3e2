package verification_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"loangate/internal/verification"
	"loangate/internal/verification/store"
)

// failingCache simulates a degraded cache backend.
type failingCache struct{}

func (failingCache) FindGST(context.Context, string) (*verification.GSTResult, error) {
	return nil, errors.New("redis down")
}
func (failingCache) SaveGST(context.Context, *verification.GSTResult) error {
	return errors.New("redis down")
}
func (failingCache) FindPAN(context.Context, string) (*verification.PANResult, error) {
	return nil, errors.New("redis down")
}
func (failingCache) SavePAN(context.Context, *verification.PANResult) error {
	return errors.New("redis down")
}

// failingRecordStore simulates a degraded database.
type failingRecordStore struct{}

func (failingRecordStore) Save(context.Context, *store.Record) error {
	return errors.New("postgres down")
}

type VerificationServiceSuite struct {
	suite.Suite
	cache   *store.MemoryCache
	records *store.MemoryRecordStore
	service *verification.Service
}

func TestVerificationServiceSuite(t *testing.T) {
	suite.Run(t, new(VerificationServiceSuite))
}

func (s *VerificationServiceSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.cache = store.NewMemoryCache(time.Hour)
	s.records = store.NewMemoryRecordStore()
	s.service = verification.NewService(verification.MockGSTClient{}, verification.MockPANClient{}, s.cache, s.records, logger, nil, 24*time.Hour)
}

func (s *VerificationServiceSuite) TestVerifyGST() {
	ctx := context.Background()

	s.Run("demo number verifies", func() {
		result, err := s.service.VerifyGST(ctx, verification.DemoGSTNumber)
		s.Require().NoError(err)
		s.True(result.Verified)
		s.Equal("FINAGG TECHNOLOGIES PRIVATE LIMITED", result.BusinessName)
		s.Equal(24148440.33, result.AnnualTurnover)
		s.Equal("CMR-2", result.CreditScore)
	})

	s.Run("unknown number returns unverified result, not an error", func() {
		result, err := s.service.VerifyGST(ctx, "27ZZZZZ9999Z9Z9")
		s.Require().NoError(err)
		s.False(result.Verified)
		s.Contains(result.Error, "not found")
	})

	s.Run("repeat lookup is served from cache", func() {
		first, err := s.service.VerifyGST(ctx, verification.DemoGSTNumber)
		s.Require().NoError(err)

		second, err := s.service.VerifyGST(ctx, verification.DemoGSTNumber)
		s.Require().NoError(err)
		s.Equal(first.VerificationDate, second.VerificationDate)
	})

	s.Run("verification record persisted", func() {
		before := len(s.records.Records())
		_, err := s.service.VerifyGST(ctx, "29AAAAA0000A1Z5")
		s.Require().NoError(err)

		records := s.records.Records()
		s.Require().Len(records, before+1)
		last := records[len(records)-1]
		s.Equal("29AAAAA0000A1Z5", last.Identifier)
		s.False(last.Verified)
		s.True(last.ExpiresAt.After(last.VerifiedAt))
	})
}

func (s *VerificationServiceSuite) TestVerifyPAN() {
	ctx := context.Background()

	s.Run("demo number verifies", func() {
		result, err := s.service.VerifyPAN(ctx, verification.DemoPANNumber)
		s.Require().NoError(err)
		s.True(result.Verified)
		s.Equal("Active", result.Status)
	})

	s.Run("unknown number returns unverified result", func() {
		result, err := s.service.VerifyPAN(ctx, "ZZZZZ9999Z")
		s.Require().NoError(err)
		s.False(result.Verified)
	})
}

func (s *VerificationServiceSuite) TestDegradedBackends() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := verification.NewService(verification.MockGSTClient{}, verification.MockPANClient{}, failingCache{}, failingRecordStore{}, logger, nil, time.Hour)

	s.Run("cache and record failures never block the result", func() {
		result, err := service.VerifyGST(ctx, verification.DemoGSTNumber)
		s.Require().NoError(err)
		s.True(result.Verified)

		pan, err := service.VerifyPAN(ctx, verification.DemoPANNumber)
		s.Require().NoError(err)
		s.True(pan.Verified)
	})
}

func (s *VerificationServiceSuite) TestNilBackends() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := verification.NewService(verification.MockGSTClient{}, verification.MockPANClient{}, nil, nil, logger, nil, time.Hour)

	result, err := service.VerifyGST(ctx, verification.DemoGSTNumber)
	s.Require().NoError(err)
	s.True(result.Verified)
}

func TestPANFromGST(t *testing.T) {
	if got := verification.PANFromGST(verification.DemoGSTNumber); got != verification.DemoPANNumber {
		t.Fatalf("verification.PANFromGST(%q) = %q, want %q", verification.DemoGSTNumber, got, verification.DemoPANNumber)
	}
	if got := verification.PANFromGST("short"); got != "" {
		t.Fatalf("verification.PANFromGST on short input = %q, want empty", got)
	}
}
