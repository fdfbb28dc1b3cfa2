package ratelimit_test

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/ratelimit"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newMiniredisStore(t *testing.T) (*ratelimit.RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return ratelimit.NewRedisStore(client, "test:"), mr
}

func TestRedisStoreMinuteWindow(t *testing.T) {
	store, _ := newMiniredisStore(t)
	exerciseMinuteWindow(t, store)
}

func TestRedisStoreSharedAcrossLimiters(t *testing.T) {
	store, mr := newMiniredisStore(t)
	clk := newClock()

	a := ratelimit.NewLimiter(store, ratelimit.WithClock(clk.Now))
	b := ratelimit.NewLimiter(store, ratelimit.WithClock(clk.Now))

	for range 5 {
		require.True(t, a.Check(t.Context(), "k", domain.TierDemo).Allowed)
		require.True(t, b.Check(t.Context(), "k", domain.TierDemo).Allowed)
	}
	require.False(t, a.Check(t.Context(), "k", domain.TierDemo).Allowed)

	require.True(t, mr.Exists("test:k"))
	ttl := mr.TTL("test:k")
	require.Greater(t, ttl, 59*time.Minute)
}

func TestRedisStoreFromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	store, client, err := ratelimit.NewRedisStoreFromURL("redis://" + mr.Addr() + "/0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	d, err := store.Hit(t.Context(), "k", time.Now(), ratelimit.LimitsFor(domain.TierFree))
	require.NoError(t, err)
	require.True(t, d.Allowed)
	require.Equal(t, 49, d.RemainingMinute)

	_, _, err = ratelimit.NewRedisStoreFromURL("://bad")
	require.Error(t, err)
}

func TestRedisStoreUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	store := ratelimit.NewRedisStore(client, "")
	mr.Close()

	_, err := store.Hit(t.Context(), "k", time.Now(), ratelimit.LimitsFor(domain.TierFree))
	require.Error(t, err)

	l := ratelimit.NewLimiter(store)
	require.True(t, l.Check(t.Context(), "k", domain.TierFree).Allowed)
}
