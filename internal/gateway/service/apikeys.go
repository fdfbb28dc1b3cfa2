package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/backend"
	"github.com/aussiebroadwan/boardgate/internal/gateway/cache"
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/ratelimit"
	"github.com/aussiebroadwan/boardgate/pkg/cryptox"
)

// APIKeyCacheTTL bounds how long an accepted key record is reused. A
// revocation takes at most this long to be seen.
const APIKeyCacheTTL = time.Minute

var (
	errKeyUnknown = errors.New("service: unknown api key")
	errKeyRevoked = errors.New("service: revoked api key")
)

// APIKeyAuth is an admitted API key request.
type APIKeyAuth struct {
	// Fingerprint identifies the key in logs and rate windows.
	Fingerprint string
	GameID      string
	Tier        domain.Tier
	Limit       ratelimit.Decision
}

// APIKeyService authenticates API keys and charges them against their
// tier's rate limit.
type APIKeyService struct {
	backends backend.Source
	limiter  *ratelimit.Limiter
	records  *cache.TTL[string, *domain.APIKeyRecord]
	logger   *slog.Logger
}

// NewAPIKeyService wires the service. Only active records are cached.
func NewAPIKeyService(backends backend.Source, limiter *ratelimit.Limiter, logger *slog.Logger, opts ...cache.Option) *APIKeyService {
	return &APIKeyService{
		backends: backends,
		limiter:  limiter,
		records:  cache.New[string, *domain.APIKeyRecord]("api_keys", APIKeyCacheTTL, nil, opts...),
		logger:   logger,
	}
}

// Authenticate resolves key to its game and tier and counts the request.
// Demo keys never reach the backend: their game comes from gameID when set,
// else from the key itself.
func (s *APIKeyService) Authenticate(ctx context.Context, key, gameID string) (APIKeyAuth, error) {
	fp := cryptox.FingerprintToken(key)

	if demoGame, ok := domain.DemoGameID(key); ok {
		if gameID == "" {
			gameID = demoGame
		}
		return s.admit(ctx, fp, gameID, domain.TierDemo)
	}

	rec, err := s.records.GetWith(ctx, fp, func(ctx context.Context) (*domain.APIKeyRecord, error) {
		b, err := s.backends.Handle()
		if err != nil {
			return nil, err
		}
		rec, err := b.ValidateAPIKey(ctx, key)
		switch {
		case err != nil:
			return nil, err
		case rec == nil:
			return nil, errKeyUnknown
		case !rec.Active:
			return nil, errKeyRevoked
		}
		return rec, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, errKeyUnknown):
			s.logger.Info("api key rejected", "key_fp", cryptox.ShortFingerprint(key), "reason", "unknown")
			return APIKeyAuth{}, domain.Auth("Invalid API key")
		case errors.Is(err, errKeyRevoked):
			s.logger.Info("api key rejected", "key_fp", cryptox.ShortFingerprint(key), "reason", "revoked")
			return APIKeyAuth{}, domain.Auth("API key has been revoked")
		case domain.KindOf(err) == domain.KindUpstream, errors.Is(err, context.DeadlineExceeded):
			return APIKeyAuth{}, domain.Upstream("Failed to validate API key", err)
		default:
			return APIKeyAuth{}, domain.Internal("Failed to validate API key", err)
		}
	}

	return s.admit(ctx, fp, rec.GameID, rec.Tier)
}

func (s *APIKeyService) admit(ctx context.Context, fp, gameID string, tier domain.Tier) (APIKeyAuth, error) {
	d := s.limiter.Check(ctx, fp, tier)
	if !d.Allowed {
		s.logger.Info("api key rate limited", "key_fp", fp[:12], "tier", tier, "reason", d.Reason)
		return APIKeyAuth{}, domain.RateLimited(d.Reason, d.RetryAfter)
	}
	return APIKeyAuth{Fingerprint: fp, GameID: gameID, Tier: tier, Limit: d}, nil
}

// Sweep drops expired key records.
func (s *APIKeyService) Sweep() int { return s.records.Sweep() }
