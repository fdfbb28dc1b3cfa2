package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/aussiebroadwan/boardgate/pkg/idx"
	"github.com/redis/go-redis/v9"
)

// hitScript prunes, counts and conditionally records in one round trip.
// Returns {allowed, minuteCount, hourCount}.
var hitScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local perMinute = tonumber(ARGV[2])
local perHour = tonumber(ARGV[3])

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - 3600000)
local hour = redis.call('ZCARD', key)
local minute = redis.call('ZCOUNT', key, '(' .. (now - 60000), '+inf')

if minute >= perMinute or hour >= perHour then
  return {0, minute, hour}
end

redis.call('ZADD', key, now, ARGV[4])
redis.call('PEXPIRE', key, 3600000)
return {1, minute, hour}
`)

// RedisStore keeps one sorted set per key so every gateway instance shares
// the same windows.
type RedisStore struct {
	client redis.Scripter
	prefix string
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore wraps a go-redis client. Keys are namespaced under prefix.
func NewRedisStore(client redis.Scripter, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "boardgate:ratelimit:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// NewRedisStoreFromURL connects to the redis instance at url.
func NewRedisStoreFromURL(url string) (*RedisStore, *redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, nil, fmt.Errorf("ratelimit: parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	return NewRedisStore(client, ""), client, nil
}

// Hit implements Store.
func (s *RedisStore) Hit(ctx context.Context, key string, now time.Time, l Limits) (Decision, error) {
	member := fmt.Sprintf("%d-%s", now.UnixMilli(), idx.New())
	res, err := hitScript.Run(ctx, s.client, []string{s.prefix + key},
		now.UnixMilli(), l.PerMinute, l.PerHour, member).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit: redis hit: %w", err)
	}
	if len(res) != 3 {
		return Decision{}, fmt.Errorf("ratelimit: unexpected script reply %v", res)
	}
	return evaluate(int(res[1]), int(res[2]), l), nil
}
