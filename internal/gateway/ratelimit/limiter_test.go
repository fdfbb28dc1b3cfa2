package ratelimit_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/ratelimit"
	"github.com/aussiebroadwan/boardgate/pkg/slogx"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock { return &clock{t: time.Unix(1_700_000_000, 0)} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

// exerciseMinuteWindow runs the demo-tier minute scenario against any store.
func exerciseMinuteWindow(t *testing.T, store ratelimit.Store) {
	t.Helper()
	clk := newClock()
	l := ratelimit.NewLimiter(store, ratelimit.WithClock(clk.Now), ratelimit.WithLogger(slogx.Discard()))

	for i := range 10 {
		d := l.Check(t.Context(), "key-a", domain.TierDemo)
		require.True(t, d.Allowed, "request %d", i+1)
		require.Equal(t, 9-i, d.RemainingMinute)
		require.Equal(t, 99-i, d.RemainingHour)
	}

	d := l.Check(t.Context(), "key-a", domain.TierDemo)
	require.False(t, d.Allowed)
	require.Equal(t, 60, d.RetryAfter)
	require.Equal(t, ratelimit.ReasonMinute, d.Reason)

	// other keys are independent
	require.True(t, l.Check(t.Context(), "key-b", domain.TierDemo).Allowed)

	clk.Advance(61 * time.Second)
	d = l.Check(t.Context(), "key-a", domain.TierDemo)
	require.True(t, d.Allowed)
	require.Equal(t, 9, d.RemainingMinute)
	require.Equal(t, 89, d.RemainingHour)
}

func TestMinuteWindow(t *testing.T) {
	exerciseMinuteWindow(t, ratelimit.NewMemoryStore())
}

func TestHourWindow(t *testing.T) {
	clk := newClock()
	l := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), ratelimit.WithClock(clk.Now))

	// 100 requests spread so no minute exceeds 10
	for i := range 100 {
		require.True(t, l.Check(t.Context(), "k", domain.TierDemo).Allowed, "request %d", i+1)
		if i%10 == 9 {
			clk.Advance(61 * time.Second)
		}
	}

	d := l.Check(t.Context(), "k", domain.TierDemo)
	require.False(t, d.Allowed)
	require.Equal(t, ratelimit.ReasonHour, d.Reason)
	require.Equal(t, 3600, d.RetryAfter)

	clk.Advance(time.Hour)
	require.True(t, l.Check(t.Context(), "k", domain.TierDemo).Allowed)
}

func TestMinutePrecedence(t *testing.T) {
	// both windows are full; the minute breach is reported
	clk := newClock()
	store := ratelimit.NewMemoryStore()
	l := ratelimit.NewLimiter(store, ratelimit.WithClock(clk.Now))

	for i := range 100 {
		require.True(t, l.Check(t.Context(), "k", domain.TierDemo).Allowed)
		if i%10 == 9 && i < 90 {
			clk.Advance(61 * time.Second)
		}
	}

	d := l.Check(t.Context(), "k", domain.TierDemo)
	require.False(t, d.Allowed)
	require.Equal(t, ratelimit.ReasonMinute, d.Reason)
	require.Equal(t, 60, d.RetryAfter)
}

func TestDeniedRequestsAreNotCounted(t *testing.T) {
	clk := newClock()
	l := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), ratelimit.WithClock(clk.Now))

	for range 10 {
		l.Check(t.Context(), "k", domain.TierDemo)
	}
	for range 50 {
		require.False(t, l.Check(t.Context(), "k", domain.TierDemo).Allowed)
	}

	clk.Advance(61 * time.Second)
	require.Equal(t, 89, l.Check(t.Context(), "k", domain.TierDemo).RemainingHour)
}

func TestTiers(t *testing.T) {
	tests := []struct {
		tier      domain.Tier
		perMinute int
		perHour   int
	}{
		{domain.TierPro, 200, 10000},
		{domain.TierFree, 50, 1000},
		{domain.TierDemo, 10, 100},
		{domain.Tier("mystery"), 10, 100},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			l := ratelimit.LimitsFor(tt.tier)
			require.False(t, l.Unlimited)
			require.Equal(t, tt.perMinute, l.PerMinute)
			require.Equal(t, tt.perHour, l.PerHour)
		})
	}

	t.Run("enterprise", func(t *testing.T) {
		l := ratelimit.NewLimiter(ratelimit.NewMemoryStore())
		for range 1000 {
			d := l.Check(t.Context(), "k", domain.TierEnterprise)
			require.True(t, d.Allowed)
			require.Equal(t, -1, d.RemainingHour)
		}
	})
}

type failingStore struct{}

func (failingStore) Hit(context.Context, string, time.Time, ratelimit.Limits) (ratelimit.Decision, error) {
	return ratelimit.Decision{}, errors.New("connection refused")
}

func TestStoreFailureAllows(t *testing.T) {
	l := ratelimit.NewLimiter(failingStore{}, ratelimit.WithLogger(slogx.Discard()))
	require.True(t, l.Check(t.Context(), "k", domain.TierFree).Allowed)
}

func TestMemoryStoreConcurrent(t *testing.T) {
	clk := newClock()
	l := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), ratelimit.WithClock(clk.Now))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for range 50 {
		wg.Go(func() {
			if l.Check(context.Background(), "shared", domain.TierFree).Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		})
	}
	wg.Wait()
	require.Equal(t, 50, allowed)
	require.False(t, l.Check(t.Context(), "shared", domain.TierFree).Allowed)
}

func TestMemoryStoreSweep(t *testing.T) {
	clk := newClock()
	store := ratelimit.NewMemoryStore()
	l := ratelimit.NewLimiter(store, ratelimit.WithClock(clk.Now))

	for i := range 5 {
		l.Check(t.Context(), fmt.Sprintf("k%d", i), domain.TierDemo)
	}
	require.Equal(t, 5, store.Len())
	require.Zero(t, store.Sweep(clk.Now()))

	clk.Advance(time.Hour)
	require.Equal(t, 5, store.Sweep(clk.Now()))
	require.Zero(t, store.Len())
}

func TestMemoryStoreOutOfOrderHits(t *testing.T) {
	t.Parallel()

	store := ratelimit.NewMemoryStore()
	ctx := context.Background()
	limits := ratelimit.Limits{PerMinute: 10, PerHour: 2}
	t0 := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	// The later request reaches the store first.
	d, err := store.Hit(ctx, "k", t0.Add(30*time.Minute), limits)
	require.NoError(t, err)
	require.True(t, d.Allowed)
	d, err = store.Hit(ctx, "k", t0, limits)
	require.NoError(t, err)
	require.True(t, d.Allowed)

	// t0 has left the hour window even though it was recorded last.
	d, err = store.Hit(ctx, "k", t0.Add(61*time.Minute), limits)
	require.NoError(t, err)
	require.True(t, d.Allowed)
	require.Equal(t, 0, d.RemainingHour)
}
