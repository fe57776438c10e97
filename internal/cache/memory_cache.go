package cache

import (
	"context"
	"sync"
	"time"
)

type item[V any] struct {
	value      V
	expiration int64 // Unix nanoseconds; zero = no expire
}

func (i item[V]) expired(now int64) bool {
	return i.expiration > 0 && now > i.expiration
}

type shard[V any] struct {
	sync.RWMutex
	items map[string]item[V]
}

// MemoryCache is a sharded in-process cache with a background janitor.
type MemoryCache[V any] struct {
	shards []*shard[V]
	quit   chan struct{}
	once   sync.Once
}

// NewMemoryCache creates a 64-shard cache with a 1s janitor by default.
func NewMemoryCache[V any]() *MemoryCache[V] {
	return NewMemoryCacheWithOptions[V](64, time.Second)
}

// NewMemoryCacheWithOptions allows customizing shard count & janitor interval.
func NewMemoryCacheWithOptions[V any](shardCount int, janitorInterval time.Duration) *MemoryCache[V] {
	if shardCount < 1 {
		shardCount = 1
	}
	mc := &MemoryCache[V]{
		shards: make([]*shard[V], shardCount),
		quit:   make(chan struct{}),
	}
	for i := range mc.shards {
		mc.shards[i] = &shard[V]{items: make(map[string]item[V])}
	}
	go mc.startJanitor(janitorInterval)
	return mc
}

// Stop terminates the janitor goroutine. It is safe to call more than once.
func (mc *MemoryCache[V]) Stop() {
	mc.once.Do(func() { close(mc.quit) })
}

// Close implements Cache.
func (mc *MemoryCache[V]) Close() error {
	mc.Stop()
	return nil
}

func (mc *MemoryCache[V]) getShard(key string) *shard[V] {
	return mc.shards[int(fnv32(key)%uint32(len(mc.shards)))]
}

func fnv32(key string) uint32 {
	const offset = 2166136261
	const prime = 16777619
	h := uint32(offset)
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= prime
	}
	return h
}

// lookup must be called with the shard locked. Expired entries are evicted on read.
func (s *shard[V]) lookup(key string, now int64) (V, bool) {
	itm, ok := s.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if itm.expired(now) {
		delete(s.items, key)
		var zero V
		return zero, false
	}
	return itm.value, true
}

func (mc *MemoryCache[V]) Get(_ context.Context, key string) (V, error) {
	s := mc.getShard(key)
	s.Lock()
	val, ok := s.lookup(key, time.Now().UnixNano())
	s.Unlock()
	if !ok {
		return val, ErrCacheMiss
	}
	return val, nil
}

func expiry(ttl time.Duration) int64 {
	if ttl <= 0 {
		return 0
	}
	return time.Now().Add(ttl).UnixNano()
}

func (mc *MemoryCache[V]) Set(_ context.Context, key string, value V, ttl time.Duration) error {
	s := mc.getShard(key)
	s.Lock()
	s.items[key] = item[V]{value: value, expiration: expiry(ttl)}
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) Delete(_ context.Context, key string) error {
	s := mc.getShard(key)
	s.Lock()
	delete(s.items, key)
	s.Unlock()
	return nil
}

func (mc *MemoryCache[V]) MGet(_ context.Context, keys ...string) ([]V, []error) {
	results := make([]V, len(keys))
	errs := make([]error, len(keys))
	now := time.Now().UnixNano()

	for i, key := range keys {
		s := mc.getShard(key)
		s.Lock()
		val, ok := s.lookup(key, now)
		s.Unlock()
		if !ok {
			errs[i] = ErrCacheMiss
			continue
		}
		results[i] = val
	}
	return results, errs
}

func (mc *MemoryCache[V]) MSet(_ context.Context, kv map[string]V, ttl time.Duration) error {
	exp := expiry(ttl)
	for key, value := range kv {
		s := mc.getShard(key)
		s.Lock()
		s.items[key] = item[V]{value: value, expiration: exp}
		s.Unlock()
	}
	return nil
}

func (mc *MemoryCache[V]) startJanitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			mc.evictExpired(time.Now().UnixNano())
		case <-mc.quit:
			return
		}
	}
}

func (mc *MemoryCache[V]) evictExpired(now int64) {
	for _, s := range mc.shards {
		s.Lock()
		for k, itm := range s.items {
			if itm.expired(now) {
				delete(s.items, k)
			}
		}
		s.Unlock()
	}
}
