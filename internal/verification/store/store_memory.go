package store

import (
	"context"
	"sync"
	"time"

	"loangate/internal/verification"
)

// MemoryCache is an in-process verification cache for tests and single
// instance deployments without Redis.
type MemoryCache struct {
	mu  sync.RWMutex
	ttl time.Duration
	gst map[string]memoryEntry[verification.GSTResult]
	pan map[string]memoryEntry[verification.PANResult]
}

type memoryEntry[T any] struct {
	value     T
	expiresAt time.Time
}

// NewMemoryCache constructs an in-memory verification cache.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl: ttl,
		gst: make(map[string]memoryEntry[verification.GSTResult]),
		pan: make(map[string]memoryEntry[verification.PANResult]),
	}
}

func (c *MemoryCache) FindGST(_ context.Context, gstNumber string) (*verification.GSTResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.gst[gstNumber]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrNotFound
	}
	result := entry.value
	return &result, nil
}

func (c *MemoryCache) SaveGST(_ context.Context, result *verification.GSTResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gst[result.GSTNumber] = memoryEntry[verification.GSTResult]{
		value:     *result,
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

func (c *MemoryCache) FindPAN(_ context.Context, panNumber string) (*verification.PANResult, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	entry, ok := c.pan[panNumber]
	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrNotFound
	}
	result := entry.value
	return &result, nil
}

func (c *MemoryCache) SavePAN(_ context.Context, result *verification.PANResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pan[result.PANNumber] = memoryEntry[verification.PANResult]{
		value:     *result,
		expiresAt: time.Now().Add(c.ttl),
	}
	return nil
}

// MemoryRecordStore collects verification records in memory for tests.
type MemoryRecordStore struct {
	mu      sync.Mutex
	records []*Record
}

// NewMemoryRecordStore constructs an in-memory record store.
func NewMemoryRecordStore() *MemoryRecordStore {
	return &MemoryRecordStore{}
}

func (s *MemoryRecordStore) Save(_ context.Context, record *Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *record
	s.records = append(s.records, &copied)
	return nil
}

// Records returns a snapshot of everything saved so far.
func (s *MemoryRecordStore) Records() []*Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Record, len(s.records))
	copy(out, s.records)
	return out
}
