// Package store persists verification outcomes two ways: a TTL cache for
// repeat lookups and an append-only record table for the audit trail.
package store

import (
	"loangate/internal/verification"
)

// ErrNotFound reports a cache miss.
var ErrNotFound = verification.ErrNotFound

// Cache is a TTL cache over verification results, keyed by kind and
// identifier. Implementations must be safe for concurrent use.
type Cache = verification.Cache

// Record is one persisted verification outcome. ExpiresAt is written for
// retention tooling; reads never filter on it.
type Record = verification.Record

// RecordStore appends verification records.
type RecordStore = verification.RecordStore
