package gateway_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestProbes verifies the probes answer without a reachable backend. The
// backend handle is built lazily, so readiness does not depend on the
// backend answering.
func TestProbes(t *testing.T) {
	client := setupGatewayContainer(t, nil)

	health, err := client.GetLiveness(t.Context())
	assertHealthy(t, health, err)
	require.NotEmpty(t, health.Version)

	health, err = client.GetReadiness(t.Context())
	assertHealthy(t, health, err)
	require.NotNil(t, health.Checks)
	require.Equal(t, "ok", health.Checks.Backend)
}

// TestPublicStatus verifies the status route answers without credentials.
func TestPublicStatus(t *testing.T) {
	client := setupGatewayContainer(t, nil)

	status, err := client.GetStatus(t.Context())
	require.NoError(t, err)
	require.Equal(t, "healthy", status.Status)
	require.Equal(t, "none", status.Auth)
	require.Empty(t, status.Tier)
}
