// Package eligibility implements the underwriting decision engine: a pure,
// deterministic mapping from a business financial profile to an approval
// decision, risk rating, and approved amount.
package eligibility

import "time"

// Decision is the underwriting outcome.
type Decision string

const (
	DecisionApproved    Decision = "APPROVED"
	DecisionConditional Decision = "CONDITIONAL"
	DecisionDeclined    Decision = "DECLINED"
)

// RiskRating is a coarse categorical risk band.
type RiskRating string

const (
	RiskLow       RiskRating = "LOW"
	RiskLowMedium RiskRating = "LOW-MEDIUM"
	RiskMedium    RiskRating = "MEDIUM"
	RiskHigh      RiskRating = "HIGH"
)

// BusinessProfile is the normalized input to the decision engine. All fields
// are concrete; defaulting of untrusted input happens in Input.Profile.
type BusinessProfile struct {
	AnnualTurnover        float64
	ExistingDebt          float64
	RequestedAmount       float64
	CreditScoreNumeric    int
	CollateralAvailable   bool
	FilingComplianceScore float64
}

// Input is the wire shape accepted by both transports. Pointer fields
// distinguish absent from zero so untrusted input can be defaulted, never
// rejected.
type Input struct {
	AnnualTurnover        float64  `json:"annual_turnover"`
	ExistingDebt          float64  `json:"existing_debt"`
	RequestedAmount       *float64 `json:"requested_amount"`
	LoanAmount            *float64 `json:"loan_amount"`
	CreditScoreNumeric    *int     `json:"credit_score_numeric"`
	CollateralAvailable   bool     `json:"collateral_available"`
	FilingComplianceScore *float64 `json:"filing_compliance_score"`
}

const (
	// defaultCreditScore is assumed when the caller omits a bureau score.
	defaultCreditScore = 750
	// defaultFilingCompliance is the assumed mid filing-compliance fraction.
	defaultFilingCompliance = 0.70
)

// Profile resolves defaults and aliases into a concrete BusinessProfile.
// requested_amount wins over the legacy loan_amount alias when both appear.
func (in Input) Profile() BusinessProfile {
	p := BusinessProfile{
		AnnualTurnover:        in.AnnualTurnover,
		ExistingDebt:          in.ExistingDebt,
		CollateralAvailable:   in.CollateralAvailable,
		CreditScoreNumeric:    defaultCreditScore,
		FilingComplianceScore: defaultFilingCompliance,
	}
	switch {
	case in.RequestedAmount != nil:
		p.RequestedAmount = *in.RequestedAmount
	case in.LoanAmount != nil:
		p.RequestedAmount = *in.LoanAmount
	}
	if in.CreditScoreNumeric != nil {
		p.CreditScoreNumeric = *in.CreditScoreNumeric
	}
	if in.FilingComplianceScore != nil {
		p.FilingComplianceScore = *in.FilingComplianceScore
	}
	return p
}

// Result is the decision engine output. Monetary fields are rounded to two
// decimals and the DTI ratio to three; internal comparisons used full
// precision.
type Result struct {
	Decision            Decision   `json:"decision"`
	Reason              string     `json:"reason"`
	ApprovedAmount      float64    `json:"approved_amount"`
	MaxEligible         float64    `json:"max_eligible"`
	RiskRating          RiskRating `json:"risk_rating"`
	RiskBand            RiskRating `json:"risk_band"`
	ApprovalProbability float64    `json:"approval_probability"`
	DTIRatio            float64    `json:"dti_ratio"`
	CreditScore         int        `json:"credit_score"`
	AssessedAt          time.Time  `json:"assessed_at"`
}
