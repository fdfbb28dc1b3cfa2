// Package metrics provides Prometheus metrics for the gateway.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "boardgate"

var (
	// RequestsTotal counts routed requests by route pattern, credential mode
	// and status code.
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of routed requests",
		},
		[]string{"route", "mode", "code"},
	)

	// RequestDuration measures handler duration including backend calls.
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duration of routed requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	// VerificationsTotal counts token verification outcomes.
	VerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_verifications_total",
			Help:      "Total number of identity token verifications by outcome",
		},
		[]string{"provider", "outcome"},
	)

	// CacheLookupsTotal counts cache reads by cache name and result.
	CacheLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Total number of cache lookups",
		},
		[]string{"cache", "result"},
	)

	// CacheFetchErrorsTotal counts failed refreshes.
	CacheFetchErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_fetch_errors_total",
			Help:      "Total number of failed cache refreshes",
		},
		[]string{"cache"},
	)

	// RateLimitDecisionsTotal counts limiter decisions by tier.
	RateLimitDecisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratelimit_decisions_total",
			Help:      "Total number of rate limit decisions",
		},
		[]string{"tier", "decision"},
	)

	// BackendCallsTotal counts backend RPC calls by method and status.
	BackendCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "backend_calls_total",
			Help:      "Total number of backend RPC calls",
		},
		[]string{"method", "status"},
	)

	// BackendCallDuration measures backend RPC latency.
	BackendCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "backend_call_duration_seconds",
			Help:      "Duration of backend RPC calls in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// ConnectorRecyclesTotal counts backend handle recycles.
	ConnectorRecyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connector_recycles_total",
			Help:      "Total number of backend handle recycles",
		},
		[]string{"status"},
	)
)

// RecordRequest records a routed request.
func RecordRequest(route, mode string, code int, d time.Duration) {
	RequestsTotal.WithLabelValues(route, mode, strconv.Itoa(code)).Inc()
	RequestDuration.WithLabelValues(route).Observe(d.Seconds())
}

// RecordVerification records a token verification outcome ("ok" or a
// failure kind).
func RecordVerification(provider, outcome string) {
	VerificationsTotal.WithLabelValues(provider, outcome).Inc()
}

// RecordCacheLookup records a cache read.
func RecordCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheLookupsTotal.WithLabelValues(cache, result).Inc()
}

// RecordCacheFetchError records a failed refresh.
func RecordCacheFetchError(cache string) {
	CacheFetchErrorsTotal.WithLabelValues(cache).Inc()
}

// RecordRateLimit records a limiter decision.
func RecordRateLimit(tier string, allowed bool) {
	decision := "denied"
	if allowed {
		decision = "allowed"
	}
	RateLimitDecisionsTotal.WithLabelValues(tier, decision).Inc()
}

// RecordBackendCall records a backend RPC call. status is "ok", "invalid" or
// "unavailable".
func RecordBackendCall(method, status string, d time.Duration) {
	BackendCallsTotal.WithLabelValues(method, status).Inc()
	BackendCallDuration.WithLabelValues(method).Observe(d.Seconds())
}

// RecordRecycle records a connector recycle attempt.
func RecordRecycle(ok bool) {
	status := "ok"
	if !ok {
		status = "failed"
	}
	ConnectorRecyclesTotal.WithLabelValues(status).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
