package ratelimit

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// luaScript bumps the window counter and returns {count, ttl}. A key left
// without a ttl gets one again so it cannot block a client forever.
// KEYS[1]: counter key
// ARGV[1]: window in seconds
const luaScript = `
local key = KEYS[1]
local window = tonumber(ARGV[1])

local current = redis.call("INCR", key)
local ttl = redis.call("TTL", key)
if current == 1 or ttl < 0 then
    redis.call("EXPIRE", key, window)
    ttl = window
end

return {current, ttl}
`

const keyPrefix = "rate_limit:"

// Decision is the outcome of one counted request.
type Decision struct {
	Allowed    bool
	Limit      int64
	Remaining  int64
	RetryAfter time.Duration
}

// Interceptor is a fixed window counter shared through redis.
type Interceptor struct {
	client redis.Scripter
	window time.Duration
	limit  int64
}

func NewInterceptor(client redis.Scripter, windowSeconds int, limit int64) *Interceptor {
	return &Interceptor{
		client: client,
		window: time.Duration(windowSeconds) * time.Second,
		limit:  limit,
	}
}

func (i *Interceptor) Allow(ctx context.Context, key string) (Decision, error) {
	result, err := i.client.
		Eval(ctx, luaScript, []string{keyPrefix + key}, int(i.window.Seconds())).Int64Slice()
	if err != nil {
		return Decision{}, err
	}
	if len(result) != 2 {
		return Decision{}, errors.Errorf("unexpected rate limit reply %v", result)
	}

	count, ttl := result[0], result[1]
	d := Decision{
		Allowed:   count <= i.limit,
		Limit:     i.limit,
		Remaining: max(i.limit-count, 0),
	}
	if !d.Allowed {
		d.RetryAfter = time.Duration(ttl) * time.Second
	}
	return d, nil
}
