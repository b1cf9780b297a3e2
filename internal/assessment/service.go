// Package assessment runs the full origination pipeline in one call: verify
// the applicant's GST and PAN, normalize the registry data into a financial
// profile, run the eligibility engine, and match lending partners.
package assessment

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"loangate/internal/eligibility"
	"loangate/internal/lender"
	"loangate/internal/report"
	"loangate/internal/verification"
	dErrors "loangate/pkg/domain-errors"
	"loangate/pkg/requestcontext"
)

// evidenceTimeout bounds the concurrent registry lookups.
const evidenceTimeout = 10 * time.Second

// Request is one composite assessment ask. GSTNumber identifies the
// business; RequestedAmount and CollateralAvailable come from the customer
// conversation.
type Request struct {
	GSTNumber           string
	RequestedAmount     float64
	CollateralAvailable bool
}

// Result bundles the verification evidence, the decision, and the matched
// lenders.
type Result struct {
	GST        verification.GSTResult  `json:"gst_verification"`
	PAN        *verification.PANResult `json:"pan_verification,omitempty"`
	Profile    report.Normalized       `json:"business_profile"`
	Decision   eligibility.Result      `json:"assessment"`
	Lenders    []lender.Lender         `json:"matched_lenders"`
	AssessedAt time.Time               `json:"assessed_at"`
}

// evidence holds the concurrently gathered registry results.
type evidence struct {
	gst verification.GSTResult
	pan *verification.PANResult
}

// Service orchestrates the origination pipeline.
type Service struct {
	verifier    *verification.Service
	eligibility *eligibility.Service
	lenders     *lender.Service
	logger      *slog.Logger
}

// NewService constructs an assessment service.
func NewService(verifier *verification.Service, elig *eligibility.Service, lenders *lender.Service, logger *slog.Logger) *Service {
	return &Service{
		verifier:    verifier,
		eligibility: elig,
		lenders:     lenders,
		logger:      logger,
	}
}

// Assess runs verification, scoring, and lender matching for one business.
// An unverifiable GST number fails the whole assessment; a lender lookup
// failure degrades to an empty match list.
func (s *Service) Assess(ctx context.Context, req Request) (*Result, error) {
	if req.GSTNumber == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "gst_number field is required")
	}

	ev, err := s.gatherEvidence(ctx, req.GSTNumber)
	if err != nil {
		return nil, err
	}
	if !ev.gst.Verified {
		return nil, dErrors.Newf(dErrors.CodeValidation, "gst number could not be verified: %s", ev.gst.Error)
	}

	now := requestcontext.Now(ctx)
	profile := report.Normalize(report.Raw{
		BusinessName:     ev.gst.BusinessName,
		GSTNumber:        ev.gst.GSTNumber,
		PANNumber:        ev.gst.PANNumber,
		AnnualTurnover:   ev.gst.AnnualTurnover,
		FilingCompliance: ev.gst.FilingCompliance,
		CreditScore:      report.CreditGrade(ev.gst.CreditScore),
		ExistingLoans:    ev.gst.ExistingLoans,
		Constitution:     ev.gst.Constitution,
		Address:          ev.gst.Address,
	}, now)

	decision := s.eligibility.Evaluate(ctx, eligibility.Input{
		AnnualTurnover:        profile.AnnualTurnover,
		ExistingDebt:          profile.ExistingDebt,
		RequestedAmount:       &req.RequestedAmount,
		CreditScoreNumeric:    &profile.CreditScoreNumeric,
		CollateralAvailable:   req.CollateralAvailable,
		FilingComplianceScore: &profile.FilingCompliance,
	})

	matched := s.matchLenders(ctx, req.RequestedAmount, profile.CreditScoreNumeric)

	return &Result{
		GST:        ev.gst,
		PAN:        ev.pan,
		Profile:    profile,
		Decision:   decision,
		Lenders:    matched,
		AssessedAt: now,
	}, nil
}

// gatherEvidence runs the GST and PAN lookups in parallel with shared
// cancellation. The PAN number is only known after the GST result, so the
// PAN branch performs its own dependent lookup using the demo-stable mapping.
func (s *Service) gatherEvidence(ctx context.Context, gstNumber string) (*evidence, error) {
	ctx, cancel := context.WithTimeout(ctx, evidenceTimeout)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	ev := &evidence{}

	g.Go(func() error {
		gst, err := s.verifier.VerifyGST(ctx, gstNumber)
		if err != nil {
			return err
		}
		ev.gst = gst
		return nil
	})

	g.Go(func() error {
		pan, err := s.verifier.VerifyPAN(ctx, verification.PANFromGST(gstNumber))
		if err != nil {
			// PAN evidence is corroborating, not required.
			s.logDegraded(ctx, "pan verification failed", err)
			return nil
		}
		ev.pan = &pan
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ev, nil
}

// matchLenders finds partners for the approved profile. Failures degrade to
// an empty list so a database outage never blocks the decision.
func (s *Service) matchLenders(ctx context.Context, amount float64, creditScore int) []lender.Lender {
	filters := lender.Filters{CreditScore: &creditScore}
	if amount > 0 {
		filters.MinAmount = &amount
	}

	matched, err := s.lenders.Match(ctx, filters)
	if err != nil {
		s.logDegraded(ctx, "lender match unavailable during assessment", err)
		return []lender.Lender{}
	}
	return matched
}

func (s *Service) logDegraded(ctx context.Context, msg string, err error) {
	if s.logger != nil {
		s.logger.WarnContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
}
