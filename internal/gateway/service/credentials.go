package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/cache"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
)

// CredentialCacheTTL bounds how long a game's credential config is reused.
const CredentialCacheTTL = 5 * time.Minute

const primaryClientSuffix = ".apps.googleusercontent.com"

// CredentialService serves per-game provider credentials: a cached read
// path for token verification and the session-authenticated management
// operations, which invalidate the cache on success.
type CredentialService struct {
	backends backend.Source
	configs  *cache.TTL[string, *domain.GameCredentialConfig]
	logger   *slog.Logger
}

// NewCredentialService wires the service.
func NewCredentialService(backends backend.Source, logger *slog.Logger, opts ...cache.Option) *CredentialService {
	s := &CredentialService{backends: backends, logger: logger}
	s.configs = cache.New("credential_config", CredentialCacheTTL, s.fetch, opts...)
	return s
}

func (s *CredentialService) fetch(ctx context.Context, gameID string) (*domain.GameCredentialConfig, error) {
	b, err := s.backends.Handle()
	if err != nil {
		return nil, err
	}
	return b.GetGameCredentialConfig(ctx, gameID)
}

// Config returns the game's credential config; nil when the game has none.
// A game without config is cached like any other answer.
func (s *CredentialService) Config(ctx context.Context, gameID string) (*domain.GameCredentialConfig, error) {
	return s.configs.Get(ctx, gameID)
}

// Invalidate drops the cached config for gameID.
func (s *CredentialService) Invalidate(gameID string) {
	s.configs.Invalidate(gameID)
	s.logger.Debug("credential config invalidated", "game_id", gameID)
}

// Sweep drops expired configs.
func (s *CredentialService) Sweep() int { return s.configs.Sweep() }

// Settings returns the caller's view of the game's credential settings.
func (s *CredentialService) Settings(ctx context.Context, token, gameID string) (backend.Result[backend.CredentialSettings], error) {
	b, err := s.backends.Handle()
	if err != nil {
		return backend.Result[backend.CredentialSettings]{}, err
	}
	return b.GetGameCredentialSettings(ctx, token, gameID)
}

// SetPrimary registers the game's primary-provider client ids.
func (s *CredentialService) SetPrimary(ctx context.Context, token, gameID string, clientIDs []string) (backend.Result[string], error) {
	if err := ValidateClientIDs(clientIDs); err != nil {
		return backend.Result[string]{}, err
	}
	return s.write(gameID, func(b backend.Backend) (backend.Result[string], error) {
		return b.SetPrimaryCredentials(ctx, token, gameID, clientIDs)
	})
}

// SetSecondary registers the game's secondary-provider bundle id.
func (s *CredentialService) SetSecondary(ctx context.Context, token, gameID, bundleID, teamID string) (backend.Result[string], error) {
	if err := ValidateBundleID(bundleID); err != nil {
		return backend.Result[string]{}, err
	}
	return s.write(gameID, func(b backend.Backend) (backend.Result[string], error) {
		return b.SetSecondaryCredentials(ctx, token, gameID, bundleID, teamID)
	})
}

// Clear removes the game's credentials for provider.
func (s *CredentialService) Clear(ctx context.Context, token, gameID string, provider domain.Provider) (backend.Result[string], error) {
	return s.write(gameID, func(b backend.Backend) (backend.Result[string], error) {
		return b.ClearCredentials(ctx, token, gameID, provider)
	})
}

func (s *CredentialService) write(gameID string, op func(backend.Backend) (backend.Result[string], error)) (backend.Result[string], error) {
	b, err := s.backends.Handle()
	if err != nil {
		return backend.Result[string]{}, err
	}
	res, err := op(b)
	if err != nil {
		return res, err
	}
	if _, _, ok := res.Unpack(); ok {
		s.Invalidate(gameID)
	}
	return res, nil
}

// ValidateClientIDs checks primary-provider OAuth client ids.
func ValidateClientIDs(ids []string) error {
	if len(ids) == 0 {
		return domain.Validation("clientIds must be an array of Google OAuth client IDs")
	}
	for _, id := range ids {
		if !strings.HasSuffix(id, primaryClientSuffix) {
			return domain.Validation(fmt.Sprintf("Invalid client ID format: %s. Must end with %s", id, primaryClientSuffix))
		}
	}
	return nil
}

// ValidateBundleID checks a reverse-DNS application bundle id.
func ValidateBundleID(id string) error {
	if id == "" {
		return domain.Validation("bundleId is required (e.g., com.company.appname)")
	}
	if !strings.Contains(id, ".") || len(id) < 5 {
		return domain.Validation("Invalid bundle ID format. Expected: com.company.appname")
	}
	return nil
}
