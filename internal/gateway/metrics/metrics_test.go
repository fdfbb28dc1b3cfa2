package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordVerification(t *testing.T) {
	before := testutil.ToFloat64(VerificationsTotal.WithLabelValues("google", "expired"))
	RecordVerification("google", "expired")
	require.Equal(t, before+1, testutil.ToFloat64(VerificationsTotal.WithLabelValues("google", "expired")))
}

func TestRecordCacheLookup(t *testing.T) {
	hits := testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("test", "hit"))
	misses := testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("test", "miss"))

	RecordCacheLookup("test", true)
	RecordCacheLookup("test", false)
	RecordCacheLookup("test", false)

	require.Equal(t, hits+1, testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("test", "hit")))
	require.Equal(t, misses+2, testutil.ToFloat64(CacheLookupsTotal.WithLabelValues("test", "miss")))
}

func TestRecordRequest(t *testing.T) {
	before := testutil.ToFloat64(RequestsTotal.WithLabelValues("GET /health", "public", "200"))
	RecordRequest("GET /health", "public", 200, 3*time.Millisecond)
	require.Equal(t, before+1, testutil.ToFloat64(RequestsTotal.WithLabelValues("GET /health", "public", "200")))
}
