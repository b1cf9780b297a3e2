package store

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"loangate/internal/lender"
)

// PostgresStore reads lenders from PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed lender store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Match returns up to MaxResults active lenders, one row per name (lowest id
// wins), optionally filtered by minimum ticket size and credit-score floor.
func (s *PostgresStore) Match(ctx context.Context, filters lender.Filters) ([]lender.Lender, error) {
	query := `
		SELECT DISTINCT ON (name)
			id, name, product_name, interest_rate_min, interest_rate_max,
			commission_structure, approval_rate_avg, active
		FROM lenders
		WHERE active = true
	`
	var params []any

	if filters.MinAmount != nil {
		params = append(params, *filters.MinAmount)
		query += " AND loan_amount_min <= $" + strconv.Itoa(len(params))
	}
	if filters.CreditScore != nil {
		params = append(params, *filters.CreditScore)
		query += " AND min_credit_score <= $" + strconv.Itoa(len(params))
	}

	query += " ORDER BY name, id LIMIT " + strconv.Itoa(MaxResults)

	rows, err := s.db.QueryContext(ctx, query, params...)
	if err != nil {
		return nil, fmt.Errorf("match lenders: %w", err)
	}
	defer rows.Close()

	lenders := make([]lender.Lender, 0, MaxResults)
	for rows.Next() {
		var l lender.Lender
		if err := rows.Scan(
			&l.ID,
			&l.Name,
			&l.ProductName,
			&l.InterestRateMin,
			&l.InterestRateMax,
			&l.CommissionStructure,
			&l.ApprovalRateAvg,
			&l.Active,
		); err != nil {
			return nil, fmt.Errorf("scan lender row: %w", err)
		}
		lenders = append(lenders, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lender rows: %w", err)
	}
	return lenders, nil
}
