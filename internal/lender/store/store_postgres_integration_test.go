//go:build integration

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"loangate/internal/lender"
	"loangate/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	pg    *containers.PostgresContainer
	store *PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.pg = containers.NewPostgresContainer(s.T())
	s.store = NewPostgres(s.pg.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.pg.TruncateTables(context.Background(), "lenders"))
}

func (s *PostgresStoreSuite) seed() {
	const insert = `
		INSERT INTO lenders (name, product_name, interest_rate_min, interest_rate_max,
			commission_structure, approval_rate_avg, loan_amount_min, min_credit_score, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	rows := []struct {
		name, product, commission  string
		rateMin, rateMax, approval float64
		amountMin                  float64
		creditScore                int
		active                     bool
	}{
		{"Axis Capital", "Working Capital", "1.5% upfront", 11.5, 14.0, 0.72, 500_000, 650, true},
		{"Axis Capital", "Term Loan", "2% upfront", 12.0, 15.0, 0.65, 1_000_000, 700, true},
		{"Bajaj Finserv", "Flexi Loan", "1% trail", 13.0, 17.0, 0.80, 200_000, 600, true},
		{"Chola Finance", "SME Loan", "1.25% upfront", 14.0, 18.0, 0.78, 300_000, 550, true},
		{"DMI Finance", "Business Loan", "flat 10k", 15.0, 20.0, 0.85, 100_000, 680, true},
		{"Inactive Lender", "Closed", "", 0, 0, 0, 0, 0, false},
	}
	for _, r := range rows {
		_, err := s.pg.DB.Exec(insert,
			r.name, r.product, r.rateMin, r.rateMax,
			r.commission, r.approval, r.amountMin, r.creditScore, r.active)
		s.Require().NoError(err)
	}
}

func (s *PostgresStoreSuite) TestMatchUnfiltered() {
	s.seed()
	ctx := context.Background()

	matched, err := s.store.Match(ctx, lender.Filters{})
	s.Require().NoError(err)
	s.Require().Len(matched, MaxResults)

	s.Run("orders by name", func() {
		s.Equal("Axis Capital", matched[0].Name)
		s.Equal("Bajaj Finserv", matched[1].Name)
		s.Equal("Chola Finance", matched[2].Name)
	})

	s.Run("deduplicates by name keeping lowest id", func() {
		s.Equal("Working Capital", matched[0].ProductName)
	})

	s.Run("excludes inactive lenders", func() {
		for _, l := range matched {
			s.True(l.Active)
			s.NotEqual("Inactive Lender", l.Name)
		}
	})
}

func (s *PostgresStoreSuite) TestMatchFiltered() {
	s.seed()
	ctx := context.Background()

	amount := 400_000.0
	score := 650
	matched, err := s.store.Match(ctx, lender.Filters{MinAmount: &amount, CreditScore: &score})
	s.Require().NoError(err)
	s.Require().Len(matched, 2)
	s.Equal("Bajaj Finserv", matched[0].Name)
	s.Equal("Chola Finance", matched[1].Name)
}

func (s *PostgresStoreSuite) TestMatchEmptyTable() {
	matched, err := s.store.Match(context.Background(), lender.Filters{})
	s.Require().NoError(err)
	s.Empty(matched)
}
