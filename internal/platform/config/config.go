package config

import (
	"os"
	"strconv"
	"time"
)

// Config aggregates every runtime setting so main stays lean.
type Config struct {
	Server       ServerConfig
	Postgres     PostgresConfig
	Redis        RedisConfig
	Anthropic    AnthropicConfig
	Verification VerificationConfig
}

// ServerConfig captures HTTP server level configuration.
type ServerConfig struct {
	Addr     string
	LogLevel string
}

// PostgresConfig captures the relational store connection settings.
type PostgresConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
}

// RedisConfig captures cache connection settings. An empty URL disables the
// cache entirely; services must treat it as optional.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// AnthropicConfig captures the language-model API settings.
type AnthropicConfig struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// VerificationConfig controls how long verification lookups stay cached.
type VerificationConfig struct {
	CacheTTL time.Duration
}

// FromEnv builds a Config from environment variables with development
// defaults. Production deployments override DATABASE_URL, REDIS_URL, and
// ANTHROPIC_API_KEY.
func FromEnv() Config {
	return Config{
		Server: ServerConfig{
			Addr:     ":" + envOr("PORT", "10000"),
			LogLevel: envOr("LOG_LEVEL", "info"),
		},
		Postgres: PostgresConfig{
			URL:          os.Getenv("DATABASE_URL"),
			MaxOpenConns: envIntOr("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: envIntOr("DB_MAX_IDLE_CONNS", 5),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envIntOr("REDIS_POOL_SIZE", 10),
			MinIdleConns: envIntOr("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDurationOr("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDurationOr("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDurationOr("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Anthropic: AnthropicConfig{
			APIKey:    os.Getenv("ANTHROPIC_API_KEY"),
			BaseURL:   envOr("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
			Model:     envOr("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
			MaxTokens: envIntOr("ANTHROPIC_MAX_TOKENS", 1000),
			Timeout:   envDurationOr("ANTHROPIC_TIMEOUT", 30*time.Second),
		},
		Verification: VerificationConfig{
			CacheTTL: envDurationOr("VERIFICATION_CACHE_TTL", 24*time.Hour),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
