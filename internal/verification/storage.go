package verification

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound reports a cache miss.
var ErrNotFound = errors.New("verification record not found")

// Cache is a TTL cache over verification results, keyed by kind and
// identifier. Implementations must be safe for concurrent use.
type Cache interface {
	FindGST(ctx context.Context, gstNumber string) (*GSTResult, error)
	SaveGST(ctx context.Context, result *GSTResult) error
	FindPAN(ctx context.Context, panNumber string) (*PANResult, error)
	SavePAN(ctx context.Context, result *PANResult) error
}

// Record is one persisted verification outcome. ExpiresAt is written for
// retention tooling; reads never filter on it.
type Record struct {
	ID         string
	Kind       Kind
	Identifier string
	Verified   bool
	Payload    []byte
	VerifiedAt time.Time
	ExpiresAt  time.Time
}

// RecordStore appends verification records.
type RecordStore interface {
	Save(ctx context.Context, record *Record) error
}
