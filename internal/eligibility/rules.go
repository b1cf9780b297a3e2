package eligibility

import (
	"fmt"
	"math"
	"time"
)

// Canonical underwriting policy. The thresholds live here as named constants
// so the policy reads as configuration, not scattered magic numbers.
const (
	// Existing debt is assumed to amortize over 36 months.
	amortizationMonths = 36.0

	// Gate thresholds: an applicant qualifies for any non-decline outcome
	// only when all three hold.
	minCreditScore      = 650
	maxDTIRatio         = 0.5
	minFilingCompliance = 0.6

	// primeCreditScore separates LOW from MEDIUM risk on approval.
	primeCreditScore = 750

	// Eligible-amount policy: secured lending underwrites half of turnover,
	// unsecured thirty percent, each under a hard cap.
	securedTurnoverShare   = 0.5
	securedAmountCap       = 50_000_000.0
	unsecuredTurnoverShare = 0.3
	unsecuredAmountCap     = 7_500_000.0
)

// MaxEligible is the policy ceiling on loan size for a turnover and
// collateral status.
func MaxEligible(annualTurnover float64, collateral bool) float64 {
	if collateral {
		return math.Min(annualTurnover*securedTurnoverShare, securedAmountCap)
	}
	return math.Min(annualTurnover*unsecuredTurnoverShare, unsecuredAmountCap)
}

// DTIRatio compares the monthly obligation on existing debt against monthly
// revenue. Zero revenue yields the worst-case ratio of 1.0, which forces the
// decline path and avoids dividing by zero.
func DTIRatio(annualTurnover, existingDebt float64) float64 {
	monthlyRevenue := annualTurnover / 12
	if monthlyRevenue <= 0 {
		return 1.0
	}
	monthlyObligation := existingDebt / amortizationMonths
	return monthlyObligation / monthlyRevenue
}

// RiskBand maps a credit score to a coarse band and approval probability,
// independent of the decision gate.
func RiskBand(creditScore int) (RiskRating, float64) {
	switch {
	case creditScore >= 750:
		return RiskLow, 0.90
	case creditScore >= 650:
		return RiskLowMedium, 0.75
	case creditScore >= 550:
		return RiskMedium, 0.60
	default:
		return RiskHigh, 0.30
	}
}

// Assess runs the canonical underwriting policy over a profile. Pure domain
// logic: no I/O, no side effects, deterministic given identical input and
// assessment time.
//
// Decline precedence: DTI first, then credit score, then filing compliance.
func Assess(p BusinessProfile, now time.Time) Result {
	dti := DTIRatio(p.AnnualTurnover, p.ExistingDebt)
	maxEligible := MaxEligible(p.AnnualTurnover, p.CollateralAvailable)
	band, probability := RiskBand(p.CreditScoreNumeric)

	result := Result{
		MaxEligible:         round2(maxEligible),
		RiskBand:            band,
		ApprovalProbability: probability,
		DTIRatio:            round3(dti),
		CreditScore:         p.CreditScoreNumeric,
		AssessedAt:          now,
	}

	switch {
	case dti >= maxDTIRatio:
		result.Decision = DecisionDeclined
		result.Reason = "Debt-to-income ratio too high"
	case p.CreditScoreNumeric < minCreditScore:
		result.Decision = DecisionDeclined
		result.Reason = "Credit score too low"
	case p.FilingComplianceScore < minFilingCompliance:
		result.Decision = DecisionDeclined
		result.Reason = "Filing compliance below required threshold"
	case p.RequestedAmount <= maxEligible:
		result.Decision = DecisionApproved
		result.Reason = "All eligibility criteria met"
		result.ApprovedAmount = round2(p.RequestedAmount)
		if p.CreditScoreNumeric >= primeCreditScore {
			result.RiskRating = RiskLow
		} else {
			result.RiskRating = RiskMedium
		}
		return result
	default:
		result.Decision = DecisionConditional
		result.Reason = fmt.Sprintf("Requested amount exceeds maximum eligible of ₹%.2f", maxEligible)
		result.ApprovedAmount = round2(maxEligible)
		result.RiskRating = RiskMedium
		return result
	}

	result.ApprovedAmount = 0
	result.RiskRating = RiskHigh
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
