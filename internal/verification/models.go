// Package verification provides GST and PAN identity checks for loan
// applicants. Lookups go to registry clients (mock tables in this build),
// results are cached and recorded; cache and record failures never block the
// primary result.
package verification

import "time"

// Kind distinguishes the two registry record types.
type Kind string

const (
	KindGST Kind = "gst"
	KindPAN Kind = "pan"
)

// GSTResult is the outcome of a GST registry lookup. Unverified numbers
// produce a populated result with Verified=false, not an error.
type GSTResult struct {
	GSTNumber          string  `json:"gst_number"`
	BusinessName       string  `json:"business_name,omitempty"`
	TradeName          string  `json:"trade_name,omitempty"`
	Constitution       string  `json:"constitution,omitempty"`
	Address            string  `json:"address,omitempty"`
	DateOfRegistration string  `json:"date_of_registration,omitempty"`
	AnnualTurnover     float64 `json:"annual_turnover,omitempty"`
	FilingCompliance   float64 `json:"filing_compliance,omitempty"`
	PANNumber          string  `json:"pan_number,omitempty"`
	CreditScore        string  `json:"credit_score,omitempty"`
	ExistingLoans      float64 `json:"existing_loans,omitempty"`
	Verified           bool    `json:"verified"`
	Error              string  `json:"error,omitempty"`

	VerificationDate   time.Time `json:"verification_date"`
	VerificationMethod string    `json:"verification_method,omitempty"`
}

// PANResult is the outcome of a PAN registry lookup.
type PANResult struct {
	PANNumber string `json:"pan_number"`
	Name      string `json:"name,omitempty"`
	Status    string `json:"status,omitempty"`
	Verified  bool   `json:"verified"`
	Error     string `json:"error,omitempty"`

	VerificationDate time.Time `json:"verification_date"`
}
