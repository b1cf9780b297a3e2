// Package store provides lender persistence. Matching always returns at most
// MaxResults active lenders, deduplicated by name.
package store

import (
	"context"

	"loangate/internal/lender"
)

// MaxResults caps how many lenders a single match returns.
const MaxResults = 3

// Store looks up lending partners.
type Store interface {
	Match(ctx context.Context, filters lender.Filters) ([]lender.Lender, error)
}
