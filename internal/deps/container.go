package deps

import (
	"fmt"
	"time"

	"github.com/joefazee/directory/internal/cache"
	"github.com/joefazee/directory/internal/logger"
	"github.com/joefazee/directory/internal/metrics"
	"github.com/joefazee/directory/internal/sanitizer"
	"gorm.io/gorm"
)

// Container holds all shared dependencies
type Container struct {
	// DB is nil when the in-memory storage driver is selected.
	DB        *gorm.DB
	Sanitizer sanitizer.HTMLStripperer
	Logger    logger.Logger
	Cache     cache.Cache[string]
	CacheTTL  time.Duration
	Metrics   *metrics.Metrics
	Seed      bool

	// Store repositories as interfaces to avoid imports
	repositories map[string]interface{}
	services     map[string]interface{}
}

func NewContainer(db *gorm.DB, sanitizer sanitizer.HTMLStripperer, log logger.Logger, c cache.Cache[string], m *metrics.Metrics) *Container {
	return &Container{
		DB:           db,
		Sanitizer:    sanitizer,
		Logger:       logger.OrNull(log),
		Cache:        c,
		Metrics:      m,
		repositories: make(map[string]interface{}),
		services:     make(map[string]interface{}),
	}
}

// UsesDatabase reports whether repositories should be backed by gorm
func (c *Container) UsesDatabase() bool {
	return c.DB != nil
}

// RegisterRepository stores a repository with a key
func (c *Container) RegisterRepository(key string, repo interface{}) {
	c.repositories[key] = repo
}

// GetRepository retrieves a repository by key
func (c *Container) GetRepository(key string) interface{} {
	return c.repositories[key]
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}

// MustGet returns the entry registered under key as T.
// It panics when modules were initialized out of order.
func MustGet[T any](entries func(string) interface{}, key string) T {
	v, ok := entries(key).(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("deps: %q is not registered as %T", key, zero))
	}
	return v
}
