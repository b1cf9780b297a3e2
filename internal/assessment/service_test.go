package assessment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"loangate/internal/eligibility"
	"loangate/internal/lender"
	lenderstore "loangate/internal/lender/store"
	"loangate/internal/verification"
	dErrors "loangate/pkg/domain-errors"
)

type failingLenderStore struct{}

func (failingLenderStore) Match(context.Context, lender.Filters) ([]lender.Lender, error) {
	return nil, errors.New("connection refused")
}

type ServiceSuite struct {
	suite.Suite
	logger *slog.Logger
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *ServiceSuite) newService(store lender.Store) *Service {
	verifier := verification.NewService(
		verification.MockGSTClient{}, verification.MockPANClient{},
		nil, nil, s.logger, nil, 24*time.Hour)
	return NewService(
		verifier,
		eligibility.NewService(s.logger, nil),
		lender.NewService(store, s.logger),
		s.logger,
	)
}

func (s *ServiceSuite) seededStore() *lenderstore.MemoryStore {
	return lenderstore.NewMemory(
		lender.Lender{ID: 1, Name: "Bajaj Finserv", ProductName: "Flexi Loan", Active: true, LoanAmountMin: 200_000, MinCreditScore: 600},
		lender.Lender{ID: 2, Name: "DMI Finance", ProductName: "Business Loan", Active: true, LoanAmountMin: 100_000, MinCreditScore: 680},
	)
}

func (s *ServiceSuite) TestAssess() {
	ctx := context.Background()

	s.Run("full pipeline for the demo business", func() {
		svc := s.newService(s.seededStore())

		result, err := svc.Assess(ctx, Request{
			GSTNumber:       verification.DemoGSTNumber,
			RequestedAmount: 5_000_000,
		})
		s.Require().NoError(err)

		s.True(result.GST.Verified)
		s.Equal("FINAGG TECHNOLOGIES PRIVATE LIMITED", result.GST.BusinessName)

		s.Require().NotNil(result.PAN)
		s.True(result.PAN.Verified)
		s.Equal(verification.DemoPANNumber, result.PAN.PANNumber)

		s.Equal(750, result.Profile.CreditScoreNumeric)
		s.Equal(2710443.0, result.Profile.ExistingDebt)

		s.Equal(eligibility.DecisionApproved, result.Decision.Decision)
		s.Equal(eligibility.RiskLow, result.Decision.RiskRating)
		s.Equal(5_000_000.0, result.Decision.ApprovedAmount)

		s.Require().Len(result.Lenders, 2)
		s.Equal("Bajaj Finserv", result.Lenders[0].Name)
	})

	s.Run("unknown gst number fails the assessment", func() {
		svc := s.newService(s.seededStore())

		_, err := svc.Assess(ctx, Request{GSTNumber: "27ZZZZZ9999Z1Z9"})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("missing gst number rejected", func() {
		svc := s.newService(s.seededStore())

		_, err := svc.Assess(ctx, Request{RequestedAmount: 1})
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})

	s.Run("lender outage degrades to empty match", func() {
		svc := s.newService(failingLenderStore{})

		result, err := svc.Assess(ctx, Request{
			GSTNumber:       verification.DemoGSTNumber,
			RequestedAmount: 5_000_000,
		})
		s.Require().NoError(err)
		s.Equal(eligibility.DecisionApproved, result.Decision.Decision)
		s.Empty(result.Lenders)
	})

	s.Run("collateral raises the eligibility ceiling", func() {
		svc := s.newService(s.seededStore())

		unsecured, err := svc.Assess(ctx, Request{
			GSTNumber:       verification.DemoGSTNumber,
			RequestedAmount: 5_000_000,
		})
		s.Require().NoError(err)

		secured, err := svc.Assess(ctx, Request{
			GSTNumber:           verification.DemoGSTNumber,
			RequestedAmount:     5_000_000,
			CollateralAvailable: true,
		})
		s.Require().NoError(err)

		s.Greater(secured.Decision.MaxEligible, unsecured.Decision.MaxEligible)
	})
}
