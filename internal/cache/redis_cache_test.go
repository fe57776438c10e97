package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedisCache(t *testing.T, opTimeout time.Duration) (*RedisCache[string], *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	rc := NewRedisCache[string](&RedisOptions{
		Addr:            s.Addr(),
		PoolSize:        5,
		MinIdleConns:    1,
		MaxRetries:      1,
		MinRetryBackoff: time.Millisecond,
		MaxRetryBackoff: 10 * time.Millisecond,
		OpTimeout:       opTimeout,
		KeyPrefix:       "country:",
	})
	t.Cleanup(func() { _ = rc.Close() })
	return rc, s
}

func TestRedisCacheDefaultOpTimeout(t *testing.T) {
	rc, _ := setupRedisCache(t, 0)
	assert.Equal(t, 50*time.Millisecond, rc.opTimeout)

	ctx := context.Background()
	assert.NoError(t, rc.Set(ctx, "foo", "bar", 0))
	v, err := rc.Get(ctx, "foo")
	assert.NoError(t, err)
	assert.Equal(t, "bar", v)
}

func TestRedisCacheBasicAndEdgeCases(t *testing.T) {
	rc, s := setupRedisCache(t, 100*time.Millisecond)
	ctx := context.Background()

	assert.NoError(t, rc.Set(ctx, "key", "value", 0))
	assert.True(t, s.Exists("country:key"))

	_, err := rc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, rc.Set(ctx, "temp", "x", 50*time.Millisecond))
	s.FastForward(100 * time.Millisecond)
	v, err := rc.Get(ctx, "temp")
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Empty(t, v)

	assert.NoError(t, rc.MSet(ctx, map[string]string{"a": "1", "b": "2"}, time.Minute))
	vals, errs := rc.MGet(ctx, "a", "b", "c")
	require.Len(t, vals, 3)
	require.Len(t, errs, 3)
	assert.NoError(t, errs[0])
	assert.Equal(t, "1", vals[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, "2", vals[1])
	assert.ErrorIs(t, errs[2], ErrCacheMiss)

	assert.NoError(t, rc.Delete(ctx, "a"))
	_, err = rc.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)

	vals, errs = rc.MGet(ctx)
	assert.Empty(t, vals)
	assert.Empty(t, errs)
	assert.NoError(t, rc.MSet(ctx, map[string]string{}, 0))
}

func TestRedisCacheDecodeErrors(t *testing.T) {
	rc, s := setupRedisCache(t, 100*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, s.Set("country:bad", "not-a-json"))

	val, err := rc.Get(ctx, "bad")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid character")
	assert.Empty(t, val)

	vals, errs := rc.MGet(ctx, "bad", "nokey")
	assert.Error(t, errs[0])
	assert.Empty(t, vals[0])
	assert.ErrorIs(t, errs[1], ErrCacheMiss)
}

func TestRedisCacheMarshalError(t *testing.T) {
	s := miniredis.RunT(t)
	rcFunc := NewRedisCache[func()](&RedisOptions{Addr: s.Addr(), OpTimeout: 50 * time.Millisecond})
	defer rcFunc.Close()

	err := rcFunc.Set(context.Background(), "fn", func() {}, 0)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported type: func")

	err = rcFunc.MSet(context.Background(), map[string]func(){"f": func() {}}, 0)
	assert.Error(t, err)
}

func TestRedisCacheClosedClient(t *testing.T) {
	rc, _ := setupRedisCache(t, 100*time.Millisecond)
	require.NoError(t, rc.Close())

	_, err := rc.Get(context.Background(), "foo")
	assert.Error(t, err)

	vals, errs := rc.MGet(context.Background(), "x", "y")
	assert.Len(t, vals, 2)
	for _, e := range errs {
		assert.Error(t, e)
	}
}
