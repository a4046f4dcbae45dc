package ratelimiter

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// takeScript mirrors refill and Take of the memory store inside Redis so that
// replicas of the app share one bucket per key.
//
// KEYS[1] bucket hash; ARGV: capacity, refill rate, interval ms, n, now ms.
// Returns {allowed, remaining, last refill ms}.
var takeScript = redis.NewScript(`
local capacity = tonumber(ARGV[1])
local rate     = tonumber(ARGV[2])
local interval = tonumber(ARGV[3])
local n        = tonumber(ARGV[4])
local now      = tonumber(ARGV[5])

local state  = redis.call("HMGET", KEYS[1], "tokens", "last")
local tokens = tonumber(state[1])
local last   = tonumber(state[2])
if tokens == nil then
  tokens = capacity
  last = now
end

if now > last then
  local intervals = math.floor((now - last) / interval)
  if intervals > 0 then
    if intervals >= math.floor(capacity / rate) + 1 then
      tokens = capacity
      last = now
    else
      tokens = math.min(tokens + intervals * rate, capacity)
      last = last + intervals * interval
    end
  end
end

local allowed = 0
if tokens >= n then
  tokens = tokens - n
  allowed = 1
end

redis.call("HSET", KEYS[1], "tokens", tokens, "last", last)
local ttl = math.ceil((capacity / rate + 1) * interval)
redis.call("PEXPIRE", KEYS[1], ttl)
return {allowed, tokens, last}
`)

// RedisStore keeps buckets in Redis hashes under prefix+key.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

type RedisStoreOption func(*RedisStore)

func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) { s.prefix = prefix }
}

func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{client: client, prefix: "ratelimit:", now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) Take(ctx context.Context, key string, n int, cfg Config) (Result, error) {
	now := s.now()
	vals, err := takeScript.Run(ctx, s.client, []string{s.prefix + key},
		cfg.Capacity, cfg.RefillRate, cfg.RefillInterval.Milliseconds(), n, now.UnixMilli(),
	).Int64Slice()
	if err != nil {
		return Result{}, errors.Join(ErrStoreUnavailable, err)
	}
	if len(vals) != 3 {
		return Result{}, fmt.Errorf("%w: unexpected script reply %v", ErrStoreUnavailable, vals)
	}

	return Result{
		Limit:     cfg.Capacity,
		Remaining: int(vals[1]),
		Allowed:   vals[0] == 1,
		ResetAt:   time.UnixMilli(vals[2]).Add(cfg.RefillInterval),
	}, nil
}

func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
