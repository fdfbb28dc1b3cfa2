package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/aussiebroadwan/boardgate/internal/gateway/app"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the gateway HTTP server",
		Long: `Run the gateway HTTP server until SIGINT or SIGTERM.

Required environment:
  BACKEND_URL             backend RPC base URL
  BACKEND_CANISTER_ID     backend canister id
  GATEWAY_IDENTITY        Ed25519 PKCS8 PEM (raw, \n-escaped or base64)
    or GATEWAY_IDENTITY_FILE

Optional environment:
  GOOGLE_CLIENT_IDS, APPLE_BUNDLE_ID, APPLE_SERVICE_ID, ALLOWED_ORIGINS,
  STRICT_NONCE, RATELIMIT_STORE (memory|redis), REDIS_URL, PORT, LOG_LEVEL,
  LOG_FORMAT, BACKEND_TIMEOUT, PROVIDER_TIMEOUT, SHUTDOWN_GRACE_PERIOD`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	app.BuildVersion = version

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(app.LoadConfig())
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := application.Run(ctx); err != nil {
		return fmt.Errorf("application error: %w", err)
	}
	return nil
}
