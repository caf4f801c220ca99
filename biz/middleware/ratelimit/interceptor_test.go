package ratelimit

import (
	"context"
	"testing"
	"time"


	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestInterceptor_Allow(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	defer rdb.Close()

	ctx := context.Background()
	key := "/users:127.0.0.1"
	redisKey := keyPrefix + key

	t.Run("Normal Flow", func(t *testing.T) {
		mr.FlushAll()
		interceptor := NewInterceptor(rdb, 5, 2)

		d, err := interceptor.Allow(ctx, key)
		assert.NoError(t, err)
		assert.Equal(t, Decision{Allowed: true, Limit: 2, Remaining: 1}, d)

		ttl := mr.TTL(redisKey)
		assert.True(t, ttl > 0 && ttl <= 5*time.Second, "TTL should be set")

		d, err = interceptor.Allow(ctx, key)
		assert.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, int64(0), d.Remaining)

		d, err = interceptor.Allow(ctx, key)
		assert.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, int64(0), d.Remaining)
		assert.True(t, d.RetryAfter > 0 && d.RetryAfter <= 5*time.Second)
	})

	t.Run("Window Expiration", func(t *testing.T) {
		mr.FlushAll()
		interceptor := NewInterceptor(rdb, 1, 1)

		d, err := interceptor.Allow(ctx, key)
		assert.NoError(t, err)
		assert.True(t, d.Allowed)

		d, err = interceptor.Allow(ctx, key)
		assert.NoError(t, err)
		assert.False(t, d.Allowed)

		mr.FastForward(2 * time.Second)

		d, err = interceptor.Allow(ctx, key)
		assert.NoError(t, err)
		assert.True(t, d.Allowed)
	})

	t.Run("Key without TTL is healed", func(t *testing.T) {
		mr.FlushAll()
		interceptor := NewInterceptor(rdb, 10, 5)

		err := rdb.Set(ctx, redisKey, 2, 0).Err()
		assert.NoError(t, err)
		assert.Equal(t, time.Duration(0), mr.TTL(redisKey))

		d, err := interceptor.Allow(ctx, key)
		assert.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.Equal(t, int64(2), d.Remaining)

		assert.True(t, mr.TTL(redisKey) > 0, "TTL should be healed")
		val, _ := mr.Get(redisKey)
		assert.Equal(t, "3", val)
	})

	t.Run("Redis error", func(t *testing.T) {
		mr.FlushAll()
		mr.SetError("connection lost")
		defer mr.SetError("")

		_, err := NewInterceptor(rdb, 1, 1).Allow(ctx, key)
		assert.Error(t, err)
	})
}
