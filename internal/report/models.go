// Package report normalizes third-party business credit reports into the
// fixed profile shape the eligibility engine consumes.
package report

import "time"

// CreditGrade is a categorical bureau rating (CMR-1 best through CMR-5 worst).
type CreditGrade string

const (
	GradeCMR1 CreditGrade = "CMR-1"
	GradeCMR2 CreditGrade = "CMR-2"
	GradeCMR3 CreditGrade = "CMR-3"
	GradeCMR4 CreditGrade = "CMR-4"
	GradeCMR5 CreditGrade = "CMR-5"

	// DefaultGrade is assumed when the bureau report omits the rating.
	DefaultGrade = GradeCMR2
	// DefaultScore is assumed for grades outside the published scale.
	DefaultScore = 750
)

// gradeScores is the fixed translation table from bureau grade to numeric
// score. Process-wide, read-only.
var gradeScores = map[CreditGrade]int{
	GradeCMR1: 850,
	GradeCMR2: 750,
	GradeCMR3: 650,
	GradeCMR4: 550,
	GradeCMR5: 450,
}

// Score translates the grade to its numeric score. Unknown grades fall back
// to DefaultScore rather than failing; bureau input is untrusted.
func (g CreditGrade) Score() int {
	if score, ok := gradeScores[g]; ok {
		return score
	}
	return DefaultScore
}

// Raw is a loosely populated external report. Every field is optional; the
// normalizer supplies defaults.
type Raw struct {
	BusinessName     string      `json:"business_name"`
	GSTNumber        string      `json:"gst_number"`
	PANNumber        string      `json:"pan_number"`
	AnnualTurnover   float64     `json:"annual_turnover"`
	FilingCompliance float64     `json:"filing_compliance"`
	CreditScore      CreditGrade `json:"credit_score"`
	ExistingLoans    float64     `json:"existing_loans"`
	Constitution     string      `json:"constitution"`
	Address          string      `json:"address"`
}

// Normalized is the internal schema with every downstream-required field
// populated.
type Normalized struct {
	BusinessName       string      `json:"business_name"`
	GSTNumber          string      `json:"gst_number"`
	PANNumber          string      `json:"pan_number"`
	AnnualTurnover     float64     `json:"annual_turnover"`
	FilingCompliance   float64     `json:"filing_compliance"`
	CreditScoreText    CreditGrade `json:"credit_score_text"`
	CreditScoreNumeric int         `json:"credit_score_numeric"`
	ExistingDebt       float64     `json:"existing_debt"`
	Constitution       string      `json:"constitution"`
	Address            string      `json:"address"`
	ParsedAt           time.Time   `json:"parsed_at"`
}
