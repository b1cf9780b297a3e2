// Package lender matches loan applicants with lending partners.
package lender

// Lender is one lending partner product row. LoanAmountMin and
// MinCreditScore drive filtering and are not part of the wire shape.
type Lender struct {
	ID                  int64   `json:"id"`
	Name                string  `json:"name"`
	ProductName         string  `json:"product_name"`
	InterestRateMin     float64 `json:"interest_rate_min"`
	InterestRateMax     float64 `json:"interest_rate_max"`
	CommissionStructure string  `json:"commission_structure"`
	ApprovalRateAvg     float64 `json:"approval_rate_avg"`
	Active              bool    `json:"active"`

	LoanAmountMin  float64 `json:"-"`
	MinCreditScore int     `json:"-"`
}

// Filters narrows lender matching. Nil fields apply no constraint.
type Filters struct {
	// MinAmount keeps lenders whose minimum ticket is at or below the
	// requested amount.
	MinAmount *float64 `json:"min_amount"`
	// CreditScore keeps lenders whose credit-score floor is at or below
	// the applicant's score.
	CreditScore *int `json:"credit_score"`
}
