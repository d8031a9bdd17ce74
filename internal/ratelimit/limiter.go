// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Policy is a token bucket refilled at PerMinute tokens per minute.
type Policy struct {
	PerMinute int
	Burst     int
}

func (p Policy) perSecond() float64 {
	return float64(p.PerMinute) / 60.0
}

// retryAfter is the time needed to refill one token from the given level.
func (p Policy) retryAfter(tokens float64) time.Duration {
	missing := 1 - tokens
	if missing <= 0 {
		return 0
	}
	return time.Duration(math.Ceil(missing*60/float64(p.PerMinute))) * time.Second
}

// KEYS[1] bucket key
// ARGV[1] refill rate in tokens per second
// ARGV[2] capacity
// ARGV[3] cost
// ARGV[4] now in unix seconds with fractional part
// ARGV[5] key ttl in seconds
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local rate = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local cost = tonumber(ARGV[3])
local now = tonumber(ARGV[4])
local ttl = tonumber(ARGV[5])

local state = redis.call("HMGET", key, "tokens", "last_refill")
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if not tokens or not last_refill then
    tokens = capacity
    last_refill = now
end

local elapsed = now - last_refill
if elapsed > 0 then
    tokens = math.min(capacity, tokens + elapsed * rate)
    last_refill = now
end

local allowed = 0
if tokens >= cost then
    tokens = tokens - cost
    allowed = 1
end

redis.call("HSET", key, "tokens", tokens, "last_refill", last_refill)
redis.call("EXPIRE", key, ttl)

return {allowed, tostring(tokens)}
`)

// RedisLimiter shares buckets between every replica of the service.
type RedisLimiter struct {
	client redis.Scripter
	prefix string
	policy Policy
	now    func() time.Time
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := float64(l.now().UnixMicro()) / 1e6

	// a bucket left alone for this long is full again
	ttl := int(math.Ceil(float64(l.policy.Burst)/l.policy.perSecond())) + 1

	res, err := tokenBucketScript.Run(
		ctx,
		l.client,
		[]string{l.prefix + key},
		l.policy.perSecond(),
		l.policy.Burst,
		1,
		now,
		ttl,
	).Slice()
	if err != nil {
		return Decision{}, err
	}

	allowed, _ := res[0].(int64)
	tokens := 0.0
	if s, ok := res[1].(string); ok {
		tokens, _ = strconv.ParseFloat(s, 64)
	}

	if allowed == 1 {
		return Decision{Allowed: true}, nil
	}
	return Decision{RetryAfter: l.policy.retryAfter(tokens)}, nil
}

func NewRedisLimiter(client redis.Scripter, prefix string, policy Policy) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: prefix,
		policy: policy,
		now:    time.Now,
	}
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one bucket per key in process. Used when no Redis is
// configured.
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	policy   Policy
	idle     time.Duration
	now      func() time.Time
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.evict(now)

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rate.Limit(l.policy.perSecond()), l.policy.Burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	if v.limiter.AllowN(now, 1) {
		return Decision{Allowed: true}, nil
	}

	return Decision{RetryAfter: l.policy.retryAfter(v.limiter.TokensAt(now))}, nil
}

// evict drops visitors idle long enough for their bucket to be full again.
func (l *MemoryLimiter) evict(now time.Time) {
	for k, v := range l.visitors {
		if now.Sub(v.lastSeen) > l.idle {
			delete(l.visitors, k)
		}
	}
}

func NewMemoryLimiter(policy Policy) *MemoryLimiter {
	idle := time.Duration(float64(policy.Burst)/policy.perSecond()*float64(time.Second)) + time.Minute

	return &MemoryLimiter{
		visitors: make(map[string]*visitor),
		policy:   policy,
		idle:     idle,
		now:      time.Now,
	}
}
