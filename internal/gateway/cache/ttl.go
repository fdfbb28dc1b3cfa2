// Package cache holds the gateway's disposable, TTL-bounded copies of
// provider key sets and per-game credential configuration.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/metrics"
	"golang.org/x/sync/singleflight"
)

// Fetcher loads the authoritative value for key.
type Fetcher[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Entry is a cached value stamped with the time it was fetched.
type Entry[V any] struct {
	Value     V
	FetchedAt time.Time
}

// Option configures a TTL cache.
type Option func(*options)

type options struct {
	now func() time.Time
}

// WithClock injects the time source. Tests use it to step past the TTL.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// TTL is a keyed cache whose entries are valid while now-fetchedAt < ttl.
// Concurrent misses for one key share a single fetch. Values are treated as
// immutable snapshots.
type TTL[K comparable, V any] struct {
	name  string
	ttl   time.Duration
	fetch Fetcher[K, V]
	now   func() time.Time

	mu      sync.RWMutex
	entries map[K]Entry[V]
	epoch   uint64

	group singleflight.Group
}

// New builds a cache. name labels its metrics. fetch may be nil when the
// cache is only filled through GetWith.
func New[K comparable, V any](name string, ttl time.Duration, fetch Fetcher[K, V], opts ...Option) *TTL[K, V] {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return &TTL[K, V]{
		name:    name,
		ttl:     ttl,
		fetch:   fetch,
		now:     o.now,
		entries: make(map[K]Entry[V]),
	}
}

// Name returns the cache label.
func (c *TTL[K, V]) Name() string { return c.name }

// Lookup is a pure read: it returns the entry for key if one exists and is
// still within TTL. It never performs I/O.
func (c *TTL[K, V]) Lookup(key K) (Entry[V], bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.FetchedAt) >= c.ttl {
		return Entry[V]{}, false
	}
	return e, true
}

// Refresh fetches key unconditionally, stores the result and returns it.
// Failed fetches are not stored. The fetch is shared with any concurrent
// Refresh of the same key; ctx only bounds this caller's wait.
func (c *TTL[K, V]) Refresh(ctx context.Context, key K) (V, error) {
	return c.refresh(ctx, key, func(ctx context.Context) (V, error) { return c.fetch(ctx, key) })
}

func (c *TTL[K, V]) refresh(ctx context.Context, key K, fetch func(context.Context) (V, error)) (V, error) {
	flight := fmt.Sprint(key)

	ch := c.group.DoChan(flight, func() (any, error) {
		c.mu.RLock()
		epoch := c.epoch
		c.mu.RUnlock()

		v, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			metrics.RecordCacheFetchError(c.name)
			return v, err
		}

		c.mu.Lock()
		if c.epoch == epoch {
			c.entries[key] = Entry[V]{Value: v, FetchedAt: c.now()}
		}
		c.mu.Unlock()
		return v, nil
	})

	select {
	case res := <-ch:
		v, _ := res.Val.(V)
		return v, res.Err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// Get returns the cached value for key, fetching on miss or expiry.
func (c *TTL[K, V]) Get(ctx context.Context, key K) (V, error) {
	if e, ok := c.Lookup(key); ok {
		metrics.RecordCacheLookup(c.name, true)
		return e.Value, nil
	}
	metrics.RecordCacheLookup(c.name, false)
	return c.Refresh(ctx, key)
}

// GetWith is Get with a fetch supplied by the caller, for caches whose key
// does not carry everything the fetch needs. Errors are not cached, so a
// fetch can keep a result out of the cache by failing.
func (c *TTL[K, V]) GetWith(ctx context.Context, key K, fetch func(context.Context) (V, error)) (V, error) {
	if e, ok := c.Lookup(key); ok {
		metrics.RecordCacheLookup(c.name, true)
		return e.Value, nil
	}
	metrics.RecordCacheLookup(c.name, false)
	return c.refresh(ctx, key, fetch)
}

// Invalidate drops key immediately. A fetch already in flight when
// Invalidate runs will not repopulate the cache.
func (c *TTL[K, V]) Invalidate(key K) {
	c.mu.Lock()
	delete(c.entries, key)
	c.epoch++
	c.mu.Unlock()

	c.group.Forget(fmt.Sprint(key))
}

// Sweep removes expired entries and reports how many were dropped.
func (c *TTL[K, V]) Sweep() int {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for k, e := range c.entries {
		if now.Sub(e.FetchedAt) >= c.ttl {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Len returns the number of stored entries, expired or not.
func (c *TTL[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
