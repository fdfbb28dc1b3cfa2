package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	httpapi "github.com/aussiebroadwan/boardgate/internal/gateway/http"
	"github.com/aussiebroadwan/boardgate/internal/gateway/identity"
	"github.com/aussiebroadwan/boardgate/internal/gateway/ratelimit"
	"github.com/aussiebroadwan/boardgate/internal/gateway/service"
	"github.com/aussiebroadwan/boardgate/pkg/httpx"
	"github.com/aussiebroadwan/boardgate/pkg/jwtx"
	"github.com/aussiebroadwan/boardgate/pkg/slogx"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// BuildVersion is overridden at build time via -ldflags "-X ...".
var BuildVersion = "v0.1.0"

// Application encapsulates the gateway with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	signer    jwtx.Signer
	connector *backend.Connector
	keyring   *identity.Keyring
	verifier  *identity.Verifier
	limiter   *ratelimit.Limiter
	memStore  *ratelimit.MemoryStore // nil when rate windows live in redis
	redis     *redis.Client

	// Services
	apiKeyService       *service.APIKeyService
	credentialService   *service.CredentialService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
// Nothing is dialled yet; the backend handle is built by Run.
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "boardgate",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	signer, err := LoadSigningIdentity(cfg, app.logger)
	if err != nil {
		return nil, err
	}
	app.signer = signer

	app.initBackend()
	if err := app.initRateLimit(); err != nil {
		return nil, err
	}
	app.initServices()
	app.initHTTP()

	return app, nil
}

func (app *Application) initBackend() {
	clientCfg := backend.ClientConfig{
		BaseURL:    app.cfg.BackendURL,
		CanisterID: app.cfg.BackendCanisterID,
		Timeout:    app.cfg.BackendTimeout,
		Signer:     app.signer,
		Issuer:     "boardgate",
	}
	factory := func() (backend.Backend, error) {
		c, err := backend.NewClient(clientCfg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	app.connector = backend.NewConnector(factory, backend.RecycleInterval, app.logger)
}

func (app *Application) initRateLimit() error {
	var store ratelimit.Store
	switch app.cfg.RateLimitStore {
	case "redis":
		rs, client, err := ratelimit.NewRedisStoreFromURL(app.cfg.RedisURL)
		if err != nil {
			return err
		}
		app.redis = client
		store = rs
		app.logger.Info("rate windows shared through redis")
	default:
		app.memStore = ratelimit.NewMemoryStore()
		store = app.memStore
		app.logger.Info("rate windows held in memory")
	}

	app.limiter = ratelimit.NewLimiter(store, ratelimit.WithLogger(app.logger))
	return nil
}

// fallbackAudiences are the deployment-wide audiences per provider.
func (app *Application) fallbackAudiences() map[domain.Provider][]string {
	// Web sign-in uses the service id; native apps present it without ".web".
	serviceBase := strings.Replace(app.cfg.AppleServiceID, ".web", "", 1)

	var apple []string
	for _, id := range []string{app.cfg.AppleBundleID, app.cfg.AppleServiceID, serviceBase} {
		if id != "" && !slices.Contains(apple, id) {
			apple = append(apple, id)
		}
	}
	return map[domain.Provider][]string{
		domain.ProviderPrimary:   app.cfg.GoogleClientIDs,
		domain.ProviderSecondary: apple,
	}
}

// initServices initializes the credential services and housekeeping
func (app *Application) initServices() {
	app.apiKeyService = service.NewAPIKeyService(app.connector, app.limiter, app.logger)
	app.credentialService = service.NewCredentialService(app.connector, app.logger)

	providers := identity.DefaultProviders()
	app.keyring = identity.NewKeyring(providers, app.cfg.ProviderTimeout)
	app.verifier = identity.NewVerifier(identity.VerifierConfig{
		Providers:         providers,
		Keyring:           app.keyring,
		Credentials:       app.credentialService,
		FallbackAudiences: app.fallbackAudiences(),
		StrictNonce:       app.cfg.StrictNonce,
		Logger:            app.logger,
	})

	sweepers := map[string]service.Sweeper{
		"api_keys":      app.apiKeyService.Sweep,
		"credentials":   app.credentialService.Sweep,
		"provider_keys": app.keyring.Sweep,
	}
	if app.memStore != nil {
		sweepers["rate_windows"] = func() int { return app.memStore.Sweep(time.Now()) }
	}
	app.housekeepingService = service.NewHousekeepingService(sweepers, app.logger, app.cfg.HousekeepingInterval)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.connector,
		BuildVersion,
		httpx.CORSConfig{AllowedOrigins: app.cfg.AllowedOrigins},
		app.logger,
	)

	// Wire services to router
	router.Verifier = app.verifier
	router.APIKeyService = app.apiKeyService
	router.CredentialService = app.credentialService
	router.FallbackAudiences = app.fallbackAudiences()
	router.Ready = app.connector.Ready
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}

// Run starts the application and blocks until ctx is cancelled or the
// server fails, then shuts everything down.
func (app *Application) Run(ctx context.Context) error {
	app.connector.Start()
	app.housekeepingService.Start()

	app.logger.Info("gateway starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"backend", app.cfg.BackendURL,
		"ratelimit_store", app.cfg.RateLimitStore,
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		app.logger.Info("shutdown requested", "cause", context.Cause(gCtx))
		return app.Shutdown()
	})

	return g.Wait()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down gateway...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	var errs []error
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
		errs = append(errs, err)
	}

	app.housekeepingService.Stop()
	app.connector.Stop()

	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("error closing redis client", "error", err)
			errs = append(errs, err)
		}
	}

	app.logger.Info("gateway stopped")
	return errors.Join(errs...)
}
