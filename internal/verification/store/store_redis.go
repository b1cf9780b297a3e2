package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"loangate/internal/verification"
)

const (
	// Redis key prefixes for cached verification results
	gstCacheKeyPrefix = "verif:gst:"
	panCacheKeyPrefix = "verif:pan:"
)

// RedisCache is a Redis-backed TTL cache over verification results. This is
// the production implementation for deployments with more than one instance.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache constructs a Redis-backed verification cache.
func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) FindGST(ctx context.Context, gstNumber string) (*verification.GSTResult, error) {
	payload, err := c.client.Get(ctx, gstCacheKeyPrefix+gstNumber).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find gst cache: %w", err)
	}
	var result verification.GSTResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("decode gst cache entry: %w", err)
	}
	return &result, nil
}

func (c *RedisCache) SaveGST(ctx context.Context, result *verification.GSTResult) error {
	if result == nil {
		return fmt.Errorf("gst result is required")
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode gst cache entry: %w", err)
	}
	if err := c.client.Set(ctx, gstCacheKeyPrefix+result.GSTNumber, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("save gst cache: %w", err)
	}
	return nil
}

func (c *RedisCache) FindPAN(ctx context.Context, panNumber string) (*verification.PANResult, error) {
	payload, err := c.client.Get(ctx, panCacheKeyPrefix+panNumber).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find pan cache: %w", err)
	}
	var result verification.PANResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, fmt.Errorf("decode pan cache entry: %w", err)
	}
	return &result, nil
}

func (c *RedisCache) SavePAN(ctx context.Context, result *verification.PANResult) error {
	if result == nil {
		return fmt.Errorf("pan result is required")
	}
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode pan cache entry: %w", err)
	}
	if err := c.client.Set(ctx, panCacheKeyPrefix+result.PANNumber, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("save pan cache: %w", err)
	}
	return nil
}
