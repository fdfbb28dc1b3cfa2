package backend

import (
	"log/slog"
	"sync"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/metrics"
)

// RecycleInterval is how long one backend handle is kept before it is
// rebuilt.
const RecycleInterval = 5 * time.Minute

// Factory builds a fresh Backend handle.
type Factory func() (Backend, error)

// Connector owns the current Backend handle. The handle is rebuilt on a
// fixed interval by a background loop, and lazily when Handle finds it
// stale. A failed rebuild keeps the previous handle.
type Connector struct {
	factory  Factory
	interval time.Duration
	logger   *slog.Logger
	now      func() time.Time

	mu        sync.RWMutex
	current   Backend
	createdAt time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

// ConnectorOption configures a Connector.
type ConnectorOption func(*Connector)

// WithConnectorClock replaces the wall clock.
func WithConnectorClock(now func() time.Time) ConnectorOption {
	return func(c *Connector) { c.now = now }
}

// NewConnector returns a Connector. If interval is 0 or negative it
// defaults to RecycleInterval. No handle is built until Handle or Start.
func NewConnector(factory Factory, interval time.Duration, logger *slog.Logger, opts ...ConnectorOption) *Connector {
	if interval <= 0 {
		interval = RecycleInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Connector{
		factory:  factory,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Handle returns the current handle, rebuilding it first when it is older
// than the recycle interval.
func (c *Connector) Handle() (Backend, error) {
	c.mu.RLock()
	cur, created := c.current, c.createdAt
	c.mu.RUnlock()

	if cur != nil && c.now().Sub(created) < c.interval {
		return cur, nil
	}
	return c.recycle(false)
}

// Ready reports whether a handle has been built.
func (c *Connector) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current != nil
}

// recycle rebuilds the handle. Unless forced, a handle that another caller
// refreshed in the meantime is returned as is.
func (c *Connector) recycle(force bool) (Backend, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !force && c.current != nil && c.now().Sub(c.createdAt) < c.interval {
		return c.current, nil
	}

	next, err := c.factory()
	metrics.RecordRecycle(err == nil)
	if err != nil {
		if c.current != nil {
			c.logger.Warn("backend handle recycle failed, keeping previous handle", "error", err)
			return c.current, nil
		}
		c.logger.Error("backend handle unavailable", "error", err)
		return nil, domain.Upstream(UnavailableMessage, err)
	}

	c.current = next
	c.createdAt = c.now()
	c.logger.Debug("backend handle recycled")
	return next, nil
}

// Start begins the background recycle loop. Call Stop to end it.
func (c *Connector) Start() {
	go c.run()
	c.logger.Info("backend connector started", "interval", c.interval)
}

// Stop ends the recycle loop and waits for it to exit.
func (c *Connector) Stop() {
	close(c.stopCh)
	<-c.doneCh
	c.logger.Info("backend connector stopped")
}

func (c *Connector) run() {
	defer close(c.doneCh)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	if _, err := c.Handle(); err != nil {
		c.logger.Warn("initial backend handle failed", "error", err)
	}

	for {
		select {
		case <-ticker.C:
			_, _ = c.recycle(true)
		case <-c.stopCh:
			return
		}
	}
}
