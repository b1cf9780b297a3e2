package report

import "time"

// Normalize maps an external report onto the internal schema. Pure transform:
// absent numerics stay zero, an absent grade becomes DefaultGrade before the
// table lookup, and the operation cannot fail.
func Normalize(raw Raw, now time.Time) Normalized {
	grade := raw.CreditScore
	if grade == "" {
		grade = DefaultGrade
	}

	return Normalized{
		BusinessName:       raw.BusinessName,
		GSTNumber:          raw.GSTNumber,
		PANNumber:          raw.PANNumber,
		AnnualTurnover:     raw.AnnualTurnover,
		FilingCompliance:   raw.FilingCompliance,
		CreditScoreText:    grade,
		CreditScoreNumeric: grade.Score(),
		ExistingDebt:       raw.ExistingLoans,
		Constitution:       raw.Constitution,
		Address:            raw.Address,
		ParsedAt:           now,
	}
}
