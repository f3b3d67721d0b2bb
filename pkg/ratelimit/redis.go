package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Sliding window log on a sorted set scored by millisecond timestamps.
// KEYS[1] = log key
// ARGV[1] = now (ms), ARGV[2] = window (ms), ARGV[3] = limit, ARGV[4] = member
// Returns: [allowed (0|1), occupied slots, reset (ms)]
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
local allowed = 0
if count < limit then
    redis.call('ZADD', key, now, ARGV[4])
    count = count + 1
    allowed = 1
end
redis.call('PEXPIRE', key, window)

local reset = now + window
local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
if oldest[2] then
    reset = tonumber(oldest[2]) + window
end
return {allowed, count, reset}
`)

var errUnexpectedReply = errors.New("ratelimit: unexpected redis reply")

// RedisLimiter shares the window across every process that talks to the same
// Redis. The whole check-and-increment runs as one Lua script.
type RedisLimiter struct {
	client redis.Scripter
	prefix string
	limit  int
	window time.Duration
	now    Clock
}

// NewRedisLimiter creates a Redis-backed sliding-window limiter.
func NewRedisLimiter(client redis.Scripter, prefix string, limit int, window time.Duration, clock Clock) *RedisLimiter {
	if clock == nil {
		clock = time.Now
	}
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		limit:  limit,
		window: window,
		now:    clock,
	}
}

// Allow implements Limiter.
func (r *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := r.now()

	reply, err := slidingWindowScript.Run(ctx, r.client,
		[]string{r.prefix + key},
		now.UnixMilli(), r.window.Milliseconds(), r.limit, uuid.NewString(),
	).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: redis eval failed: %w", err)
	}
	if len(reply) != 3 {
		return Result{}, errUnexpectedReply
	}

	remaining := r.limit - int(reply[1])
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   reply[0] == 1,
		Limit:     r.limit,
		Remaining: remaining,
		Reset:     time.UnixMilli(reply[2]),
	}, nil
}
