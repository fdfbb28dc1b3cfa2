package gateway_test

import (
	"context"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/boardgate/pkg/boardsdk"
	"github.com/aussiebroadwan/boardgate/pkg/cryptox"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for gateway end-to-end tests.
 * The gateway runs in a container against a backend that does not exist,
 * so every route that needs the backend answers 503.
 */

const (
	testImageName = "boardgate-gateway-test:latest"

	testGameID = "tic-tac-toe"
)

// TestMain builds the Docker image once before all tests and cleans it up
// after all tests complete.
func TestMain(m *testing.M) {
	if os.Getenv("BOARDGATE_E2E") == "" {
		fmt.Fprintln(os.Stdout, "BOARDGATE_E2E not set, skipping gateway e2e tests")
		os.Exit(0)
	}

	fmt.Fprintf(os.Stdout, "Building gateway Docker image...")
	if err := buildDockerImage(); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stdout, " done\n")

	exitCode := m.Run()

	fmt.Fprintf(os.Stdout, "Cleaning up gateway Docker image...")
	cleanupDockerImage()
	fmt.Fprintf(os.Stdout, " done\n")

	os.Exit(exitCode)
}

func buildDockerImage() error {
	cmd := exec.CommandContext(context.Background(), "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/gateway/Dockerfile",
		"../../../")
	cmd.Stdout = os.Stdout
	return cmd.Run()
}

func cleanupDockerImage() {
	cmd := exec.CommandContext(context.Background(), "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // image might not exist
}

// gatewayEnv is the base environment: a fresh identity and a backend URL
// that never resolves.
func gatewayEnv(t *testing.T) map[string]string {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	return map[string]string{
		"BACKEND_URL":          "http://backend.invalid:4943",
		"BACKEND_CANISTER_ID":  "game-core",
		"BACKEND_TIMEOUT":      "2s",
		"GATEWAY_IDENTITY":     string(pemKey),
		"GATEWAY_IDENTITY_KID": "gateway-e2e",
		"ENV":                  "test",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "json",
	}
}

// setupGatewayContainer starts the gateway with env merged over the base
// environment and returns an SDK client pointed at it.
func setupGatewayContainer(t *testing.T, env map[string]string, networks ...string) *boardsdk.SDKClient {
	t.Helper()
	ctx := context.Background()

	merged := gatewayEnv(t)
	maps.Copy(merged, env)

	req := testcontainers.ContainerRequest{
		Image:        testImageName,
		ExposedPorts: []string{"8080/tcp"},
		Env:          merged,
		Networks:     networks,
		WaitingFor: wait.ForHTTP("/livez").
			WithPort("8080/tcp").
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8080")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return boardsdk.NewSDKClient(fmt.Sprintf("http://%s:%s", host, mappedPort.Port()), testGameID)
}

// setupRedis starts redis on a fresh network under the alias "redis" and
// returns the network name.
func setupRedis(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	nw, err := network.New(ctx)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := nw.Remove(ctx); err != nil {
			t.Logf("failed to remove network: %v", err)
		}
	})

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:          "redis:7-alpine",
			Networks:       []string{nw.Name},
			NetworkAliases: map[string][]string{nw.Name: {"redis"}},
			WaitingFor:     wait.ForLog("Ready to accept connections").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return nw.Name
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *boardsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}

// assertUnavailable verifies the gateway reported its backend as unreachable.
func assertUnavailable(t *testing.T, err error, context string) {
	t.Helper()
	require.Error(t, err, context)
	require.True(t, boardsdk.IsUnavailable(err), "%s - expected 503, got: %v", context, err)
}
