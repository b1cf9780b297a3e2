// Package health reports the liveness of the process and the reachability of
// its dependencies. A health check never fails; degraded dependencies show up
// in the per-dependency status fields.
package health

import (
	"context"
	"database/sql"
	"time"

	"loangate/internal/platform/redis"
	"loangate/pkg/requestcontext"
)

// Version identifies the build flavor in health responses.
const Version = "production-claude-api"

const pingTimeout = 2 * time.Second

// Status is the health check result.
type Status struct {
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
	Database     string    `json:"database"`
	Cache        string    `json:"cache,omitempty"`
	AnthropicKey string    `json:"anthropic_key"`
	Version      string    `json:"version"`
}

// Service probes the process dependencies.
type Service struct {
	db            *sql.DB
	cache         *redis.Client
	llmConfigured bool
}

// NewService constructs a health service. db and cache may be nil when the
// backend is not configured.
func NewService(db *sql.DB, cache *redis.Client, llmConfigured bool) *Service {
	return &Service{db: db, cache: cache, llmConfigured: llmConfigured}
}

// Check probes every dependency and reports per-dependency status. It always
// succeeds; outages are data, not errors.
func (s *Service) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	status := Status{
		Status:       "healthy",
		Timestamp:    requestcontext.Now(ctx),
		Database:     s.databaseStatus(ctx),
		AnthropicKey: "missing",
		Version:      Version,
	}
	if s.llmConfigured {
		status.AnthropicKey = "configured"
	}
	if s.cache != nil {
		status.Cache = s.cacheStatus(ctx)
	}
	return status
}

func (s *Service) databaseStatus(ctx context.Context) string {
	if s.db == nil {
		return "not configured"
	}
	if err := s.db.PingContext(ctx); err != nil {
		return "error: " + err.Error()
	}
	return "connected"
}

func (s *Service) cacheStatus(ctx context.Context) string {
	if err := s.cache.Health(ctx); err != nil {
		return "error: " + err.Error()
	}
	return "connected"
}
