// Package ratelimit enforces the per-credential sliding-window request
// limits of each API key tier.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/metrics"
)

const (
	Minute = time.Minute
	Hour   = time.Hour
)

const (
	ReasonMinute = "Rate limit exceeded (per minute)"
	ReasonHour   = "Rate limit exceeded (per hour)"
)

// Limits are the request budgets of one tier. Unlimited tiers skip
// accounting altogether.
type Limits struct {
	PerMinute int
	PerHour   int
	Unlimited bool
}

// LimitsFor returns the budgets of tier. Unknown tiers get the demo budget.
func LimitsFor(tier domain.Tier) Limits {
	switch tier {
	case domain.TierEnterprise:
		return Limits{Unlimited: true}
	case domain.TierPro:
		return Limits{PerMinute: 200, PerHour: 10000}
	case domain.TierFree:
		return Limits{PerMinute: 50, PerHour: 1000}
	default:
		return Limits{PerMinute: 10, PerHour: 100}
	}
}

// Decision is the outcome of one Check. Remaining counts are after the
// current request; -1 means unlimited.
type Decision struct {
	Allowed         bool
	RemainingMinute int
	RemainingHour   int
	// RetryAfter is in seconds and only set on denial.
	RetryAfter int
	Reason     string
}

func unlimited() Decision {
	return Decision{Allowed: true, RemainingMinute: -1, RemainingHour: -1}
}

// Store records request timestamps per key. Hit must prune entries older
// than an hour, count the trailing minute and hour, and record now only
// when the request is allowed, atomically per key.
type Store interface {
	Hit(ctx context.Context, key string, now time.Time, l Limits) (Decision, error)
}

// evaluate applies the window rules to precomputed counts. Minute breaches
// win over hour breaches.
func evaluate(minute, hour int, l Limits) Decision {
	switch {
	case minute >= l.PerMinute:
		return Decision{Reason: ReasonMinute, RetryAfter: int(Minute / time.Second)}
	case hour >= l.PerHour:
		return Decision{Reason: ReasonHour, RetryAfter: int(Hour / time.Second)}
	}
	return Decision{
		Allowed:         true,
		RemainingMinute: l.PerMinute - minute - 1,
		RemainingHour:   l.PerHour - hour - 1,
	}
}

// Limiter checks credentials against their tier's budget.
type Limiter struct {
	store  Store
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock injects the time source.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) { l.now = now }
}

// WithLogger sets the logger used for store failures.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Limiter) { l.logger = logger }
}

// NewLimiter builds a Limiter over store.
func NewLimiter(store Store, opts ...Option) *Limiter {
	l := &Limiter{store: store, now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Check counts one request for key. key should be a fingerprint, never a
// raw credential. A store failure allows the request.
func (l *Limiter) Check(ctx context.Context, key string, tier domain.Tier) Decision {
	limits := LimitsFor(tier)
	if limits.Unlimited {
		metrics.RecordRateLimit(string(tier), true)
		return unlimited()
	}

	d, err := l.store.Hit(ctx, key, l.now(), limits)
	if err != nil {
		l.logger.Warn("rate limit store failed, allowing request", "tier", tier, "error", err)
		d = Decision{Allowed: true, RemainingMinute: limits.PerMinute, RemainingHour: limits.PerHour}
	}

	metrics.RecordRateLimit(string(tier), d.Allowed)
	return d
}
