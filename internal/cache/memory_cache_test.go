package cache

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCacheBasicAndEdgeCases(t *testing.T) {
	mc := NewMemoryCache[string]()
	defer mc.Stop()
	ctx := context.Background()

	assert.NoError(t, mc.Set(ctx, "key", "value", 0))
	v, err := mc.Get(ctx, "key")
	assert.NoError(t, err)
	assert.Equal(t, "value", v)

	_, err = mc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, mc.Set(ctx, "temp", "x", 50*time.Millisecond))
	time.Sleep(100 * time.Millisecond)
	_, err = mc.Get(ctx, "temp")
	assert.ErrorIs(t, err, ErrCacheMiss)

	data := map[string]string{"a": "1", "b": "2"}
	assert.NoError(t, mc.MSet(ctx, data, 0))
	vals, errs := mc.MGet(ctx, "a", "b", "c")
	assert.Len(t, vals, 3)
	assert.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.Equal(t, "1", vals[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, "2", vals[1])
	assert.ErrorIs(t, errs[2], ErrCacheMiss)

	assert.NoError(t, mc.Delete(ctx, "a"))
	_, err = mc.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheCustomShardCount(t *testing.T) {
	mc := NewMemoryCacheWithOptions[int](4, time.Hour)
	defer mc.Stop()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		key := fmt.Sprintf("key%d", i)
		assert.NoError(t, mc.Set(ctx, key, i, 0))
		v, err := mc.Get(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, i, v)
	}

	single := NewMemoryCacheWithOptions[int](0, time.Hour)
	defer single.Stop()
	assert.Len(t, single.shards, 1)
}

func TestMemoryCacheCloseIdempotent(t *testing.T) {
	mc := NewMemoryCache[string]()
	assert.NotPanics(t, func() {
		mc.Stop()
		assert.NoError(t, mc.Close())
	})
}

func TestMemoryCacheConcurrency(t *testing.T) {
	mc := NewMemoryCache[int]()
	defer mc.Stop()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = mc.Set(ctx, fmt.Sprintf("key%d", i), i, 0)
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _ = mc.Get(ctx, fmt.Sprintf("key%d", i))
		}(i)
	}
	wg.Wait()

	v, err := mc.Get(ctx, "key42")
	assert.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestMemoryCacheJanitorCleansExpiredEntries(t *testing.T) {
	interval := 10 * time.Millisecond
	mc := NewMemoryCacheWithOptions[string](4, interval)
	defer mc.Stop()
	ctx := context.Background()

	ttl := 20 * time.Millisecond
	assert.NoError(t, mc.Set(ctx, "to_clean", "value", ttl))

	assert.Eventually(t, func() bool {
		s := mc.getShard("to_clean")
		s.RLock()
		defer s.RUnlock()
		_, ok := s.items["to_clean"]
		return !ok
	}, time.Second, interval, "expired entry should have been removed by janitor")
}
