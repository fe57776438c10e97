package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var (
	ErrCacheMiss      = errors.New("cache: key not found")
	ErrUnknownBackend = errors.New("cache: unknown backend")
)

// Cache is our generic cache interface.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key, with TTL. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
	// MGet returns multiple values; missing ones are zero-value + ErrCacheMiss.
	MGet(ctx context.Context, keys ...string) ([]V, []error)
	// MSet sets multiple key/value pairs with same TTL.
	MSet(ctx context.Context, kv map[string]V, ttl time.Duration) error
	// Close releases background workers and connections.
	Close() error
}

// Config selects and tunes a cache backend.
type Config struct {
	Backend string        `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	TTL     time.Duration `env:"CACHE_TTL" env-default:"10m"`

	RedisAddr      string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword  string        `env:"REDIS_PASSWORD"`
	RedisDB        int           `env:"REDIS_DB" env-default:"0"`
	RedisPoolSize  int           `env:"REDIS_POOL_SIZE" env-default:"10"`
	RedisKeyPrefix string        `env:"REDIS_KEY_PREFIX" env-default:"directory:"`
	RedisTimeout   time.Duration `env:"REDIS_OP_TIMEOUT" env-default:"50ms"`
}

// RedisOptions converts the redis part of the config into client options.
func (c *Config) RedisOptions() *RedisOptions {
	return &RedisOptions{
		Addr:            c.RedisAddr,
		Password:        c.RedisPassword,
		DB:              c.RedisDB,
		PoolSize:        c.RedisPoolSize,
		MaxRetries:      2,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		OpTimeout:       c.RedisTimeout,
		KeyPrefix:       c.RedisKeyPrefix,
	}
}

// NewCache builds the backend named by backend. Redis requires opts.
func NewCache[V any](backend string, opts *RedisOptions) (Cache[V], error) {
	switch backend {
	case RedisBackend:
		if opts == nil {
			return nil, fmt.Errorf("%w: redis options are required", ErrUnknownBackend)
		}
		return NewRedisCache[V](opts), nil
	case MemoryBackend, "":
		return NewMemoryCache[V](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// FromConfig builds the backend described by cfg.
func FromConfig[V any](cfg *Config) (Cache[V], error) {
	return NewCache[V](cfg.Backend, cfg.RedisOptions())
}
