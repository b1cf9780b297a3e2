package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("full report passes through", func(t *testing.T) {
		raw := Raw{
			BusinessName:     "FINAGG TECHNOLOGIES PRIVATE LIMITED",
			GSTNumber:        "09AADCF8429L1Z4",
			PANNumber:        "AADCF8429L",
			AnnualTurnover:   24148440.33,
			FilingCompliance: 0.84,
			CreditScore:      GradeCMR2,
			ExistingLoans:    2710443,
			Constitution:     "Private Limited",
			Address:          "C 1,SECTOR 16,Noida,Uttar Pradesh-201301",
		}

		got := Normalize(raw, now)

		assert.Equal(t, "FINAGG TECHNOLOGIES PRIVATE LIMITED", got.BusinessName)
		assert.Equal(t, 24148440.33, got.AnnualTurnover)
		assert.Equal(t, 2710443.0, got.ExistingDebt)
		assert.Equal(t, GradeCMR2, got.CreditScoreText)
		assert.Equal(t, 750, got.CreditScoreNumeric)
		assert.Equal(t, now, got.ParsedAt)
	})

	t.Run("CMR-3 maps to 650", func(t *testing.T) {
		got := Normalize(Raw{CreditScore: GradeCMR3}, now)
		assert.Equal(t, 650, got.CreditScoreNumeric)
	})

	t.Run("missing grade defaults to CMR-2", func(t *testing.T) {
		got := Normalize(Raw{}, now)
		assert.Equal(t, GradeCMR2, got.CreditScoreText)
		assert.Equal(t, 750, got.CreditScoreNumeric)
	})

	t.Run("unknown grade keeps default score", func(t *testing.T) {
		got := Normalize(Raw{CreditScore: "CMR-9"}, now)
		assert.Equal(t, DefaultScore, got.CreditScoreNumeric)
	})

	t.Run("absent numerics default to zero", func(t *testing.T) {
		got := Normalize(Raw{BusinessName: "Empty Traders"}, now)
		assert.Zero(t, got.AnnualTurnover)
		assert.Zero(t, got.ExistingDebt)
		assert.Zero(t, got.FilingCompliance)
	})
}

func TestGradeScores(t *testing.T) {
	cases := []struct {
		grade CreditGrade
		score int
	}{
		{GradeCMR1, 850},
		{GradeCMR2, 750},
		{GradeCMR3, 650},
		{GradeCMR4, 550},
		{GradeCMR5, 450},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.score, tc.grade.Score(), "grade %s", tc.grade)
	}
}
