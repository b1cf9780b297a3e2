package store

import (
	"context"
	"sort"
	"sync"

	"loangate/internal/lender"
)

// MemoryStore is an in-process lender store for tests and demos. Matching
// reproduces the PostgreSQL semantics: active rows only, one row per name
// with the lowest id winning, ordered by name, capped at MaxResults.
type MemoryStore struct {
	mu      sync.RWMutex
	lenders []lender.Lender
}

// NewMemory constructs a memory lender store seeded with the given rows.
func NewMemory(lenders ...lender.Lender) *MemoryStore {
	return &MemoryStore{lenders: lenders}
}

// Add appends lender rows.
func (s *MemoryStore) Add(lenders ...lender.Lender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lenders = append(s.lenders, lenders...)
}

func (s *MemoryStore) Match(_ context.Context, filters lender.Filters) ([]lender.Lender, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byName := make(map[string]lender.Lender)
	for _, l := range s.lenders {
		if !l.Active {
			continue
		}
		if filters.MinAmount != nil && l.LoanAmountMin > *filters.MinAmount {
			continue
		}
		if filters.CreditScore != nil && l.MinCreditScore > *filters.CreditScore {
			continue
		}
		if existing, ok := byName[l.Name]; ok && existing.ID <= l.ID {
			continue
		}
		byName[l.Name] = l
	}

	matched := make([]lender.Lender, 0, len(byName))
	for _, l := range byName {
		matched = append(matched, l)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].Name < matched[j].Name })

	if len(matched) > MaxResults {
		matched = matched[:MaxResults]
	}
	return matched, nil
}
