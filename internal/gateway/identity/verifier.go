package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/metrics"
	"github.com/aussiebroadwan/boardgate/pkg/jwtx"
)

// Kind classifies a verification failure.
type Kind string

const (
	KindMalformedToken        Kind = "malformed_token"
	KindProviderNotConfigured Kind = "provider_not_configured"
	KindAudienceMismatch      Kind = "audience_mismatch"
	KindTokenExpired          Kind = "token_expired"
	KindKeyNotFound           Kind = "key_not_found"
	KindSignatureInvalid      Kind = "signature_invalid"
	KindNonceMismatch         Kind = "nonce_mismatch"
	KindMissingSubject        Kind = "missing_subject"
	KindKeysUnavailable       Kind = "keys_unavailable"
)

// VerificationError is returned for every rejected token. Hint is safe to
// show to the client.
type VerificationError struct {
	Kind Kind
	Hint string
	Err  error
}

func (e *VerificationError) Error() string { return e.Hint }

func (e *VerificationError) Unwrap() error { return e.Err }

// Status is the HTTP status a rejected token maps to.
func (e *VerificationError) Status() int {
	switch e.Kind {
	case KindMalformedToken, KindProviderNotConfigured:
		return http.StatusBadRequest
	case KindKeysUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusUnauthorized
	}
}

func fail(kind Kind, hint string, err error) *VerificationError {
	return &VerificationError{Kind: kind, Hint: hint, Err: err}
}

// CredentialSource resolves a game's registered provider credentials. A nil
// config means the game registered none.
type CredentialSource interface {
	Config(ctx context.Context, gameID string) (*domain.GameCredentialConfig, error)
}

// VerifyRequest is one token presented for verification.
type VerifyRequest struct {
	Provider      domain.Provider
	RawToken      string
	ExpectedNonce string
	GameID        string
}

// VerifierConfig wires a Verifier.
type VerifierConfig struct {
	Providers   map[domain.Provider]ProviderSpec
	Keyring     *Keyring
	Credentials CredentialSource
	// FallbackAudiences are accepted for every game, per provider.
	FallbackAudiences map[domain.Provider][]string
	// StrictNonce rejects secondary-provider tokens that carry no nonce when
	// the client supplied one.
	StrictNonce bool
	Now         func() time.Time
	Logger      *slog.Logger
}

// Verifier checks identity tokens against provider keys and the audiences
// the game (or the deployment) accepts.
type Verifier struct {
	providers   map[domain.Provider]ProviderSpec
	keyring     *Keyring
	creds       CredentialSource
	fallback    map[domain.Provider][]string
	strictNonce bool
	now         func() time.Time
	logger      *slog.Logger
}

// staleKeysetAge is the minimum key set age before an unknown kid forces a
// refetch.
const staleKeysetAge = time.Minute

const (
	privateRelaySuffix = "@privaterelay.appleid.com"
	placeholderDomain  = "@apple.local"
)

// NewVerifier builds a Verifier. Providers defaults to DefaultProviders.
func NewVerifier(cfg VerifierConfig) *Verifier {
	v := &Verifier{
		providers:   cfg.Providers,
		keyring:     cfg.Keyring,
		creds:       cfg.Credentials,
		fallback:    cfg.FallbackAudiences,
		strictNonce: cfg.StrictNonce,
		now:         cfg.Now,
		logger:      cfg.Logger,
	}
	if v.providers == nil {
		v.providers = DefaultProviders()
	}
	if v.now == nil {
		v.now = time.Now
	}
	if v.logger == nil {
		v.logger = slog.Default()
	}
	return v
}

// Verify runs the full check sequence. Audience and expiry are checked on
// the unverified payload first so a foreign or stale token never costs a key
// fetch; nothing is trusted until the signature check passes.
func (v *Verifier) Verify(ctx context.Context, req VerifyRequest) (domain.VerifiedIdentity, error) {
	id, err := v.verify(ctx, req)

	outcome := "ok"
	var verr *VerificationError
	if errors.As(err, &verr) {
		outcome = string(verr.Kind)
	}
	metrics.RecordVerification(req.Provider.String(), outcome)

	return id, err
}

func (v *Verifier) verify(ctx context.Context, req VerifyRequest) (domain.VerifiedIdentity, error) {
	p := req.Provider
	name := p.DisplayName()

	spec, ok := v.providers[p]
	if !ok {
		return domain.VerifiedIdentity{}, fail(KindProviderNotConfigured, fmt.Sprintf("Unsupported provider: %s", p), nil)
	}

	// 1. shape
	hdr, claims, err := jwtx.DecodeUnverified(req.RawToken)
	if err != nil {
		return domain.VerifiedIdentity{}, fail(KindMalformedToken, fmt.Sprintf("Invalid %s token format", name), err)
	}

	// 2. audience set
	gameCfg := v.gameConfig(ctx, req.GameID)
	own := gameCfg.Audiences(p)
	audiences := union(own, v.fallback[p])
	if len(audiences) == 0 {
		return domain.VerifiedIdentity{}, fail(KindProviderNotConfigured, notConfiguredHint(p), nil)
	}

	// 3. audience match
	aud, err := claims.MatchAudience(audiences)
	if err != nil {
		other := union(gameCfg.Audiences(p.Other()), v.fallback[p.Other()])
		return domain.VerifiedIdentity{}, fail(KindAudienceMismatch, v.audienceHint(p, own, other, audiences, claims.Audience), err)
	}

	// 4. expiry
	if err := claims.ValidateExpiry(v.now()); err != nil {
		return domain.VerifiedIdentity{}, fail(KindTokenExpired, fmt.Sprintf("%s token expired", name), err)
	}

	// 5. signature and issuer
	verified, err := v.verifySignature(ctx, spec, hdr.Kid, req.RawToken)
	if err != nil {
		return domain.VerifiedIdentity{}, err
	}
	if err := verified.ValidateIssuer(spec.Issuers...); err != nil {
		return domain.VerifiedIdentity{}, fail(KindSignatureInvalid, fmt.Sprintf("Invalid %s token issuer", name), err)
	}

	// 6. nonce
	if p == domain.ProviderSecondary && req.ExpectedNonce != "" {
		switch {
		case verified.Nonce == "" && v.strictNonce:
			return domain.VerifiedIdentity{}, fail(KindNonceMismatch, "Nonce mismatch", nil)
		case verified.Nonce == "":
			v.logger.Warn("identity token carries no nonce", "provider", p, "game_id", req.GameID)
		case verified.Nonce != req.ExpectedNonce:
			return domain.VerifiedIdentity{}, fail(KindNonceMismatch, "Nonce mismatch", nil)
		}
	}

	// 7. identity
	if verified.Subject == "" {
		return domain.VerifiedIdentity{}, fail(KindMissingSubject, fmt.Sprintf("%s token has no subject", name), nil)
	}

	email := verified.Email
	if email == "" && p == domain.ProviderSecondary {
		email = string(p) + ":" + verified.Subject + placeholderDomain
	}

	return domain.VerifiedIdentity{
		Subject:             verified.Subject,
		Email:               email,
		Name:                verified.Name,
		Provider:            p,
		IsPrivateRelayEmail: strings.HasSuffix(strings.ToLower(email), privateRelaySuffix) || bool(verified.IsPrivateEmail),
		Audience:            aud,
	}, nil
}

// verifySignature resolves the key set, refetching once when the kid is
// unknown and the cached set is old enough to predate a rotation.
func (v *Verifier) verifySignature(ctx context.Context, spec ProviderSpec, kid, raw string) (*jwtx.IdentityClaims, error) {
	name := spec.Name.DisplayName()

	keys, err := v.keyring.Get(ctx, spec.Name)
	if err != nil {
		v.logger.Error("provider key fetch failed", "provider", spec.Name, "error", err)
		return nil, fail(KindKeysUnavailable, fmt.Sprintf("Could not fetch %s signing keys", name), err)
	}

	if _, err := keys.Get(kid); err != nil {
		entry, ok := v.keyring.Lookup(spec.Name)
		if !ok || v.now().Sub(entry.FetchedAt) < staleKeysetAge {
			return nil, fail(KindKeyNotFound, fmt.Sprintf("%s token signature key not found", name), err)
		}
		v.logger.Info("unknown kid, refreshing provider keys", "provider", spec.Name, "kid", kid)
		if keys, err = v.keyring.Refresh(ctx, spec.Name); err != nil {
			return nil, fail(KindKeysUnavailable, fmt.Sprintf("Could not fetch %s signing keys", name), err)
		}
		if _, err := keys.Get(kid); err != nil {
			return nil, fail(KindKeyNotFound, fmt.Sprintf("%s token signature key not found", name), err)
		}
	}

	claims, err := jwtx.VerifySignature(raw, keys, spec.Methods...)
	if err != nil {
		if errors.Is(err, jwtx.ErrUnknownKID) || errors.Is(err, jwtx.ErrNoKey) {
			return nil, fail(KindKeyNotFound, fmt.Sprintf("%s token signature key not found", name), err)
		}
		return nil, fail(KindSignatureInvalid, fmt.Sprintf("Invalid %s token signature", name), err)
	}
	return claims, nil
}

// gameConfig loads the game's credentials. Failures are logged and treated
// as "no game credentials" so the fallback audiences still apply.
func (v *Verifier) gameConfig(ctx context.Context, gameID string) *domain.GameCredentialConfig {
	if gameID == "" || v.creds == nil {
		return nil
	}
	cfg, err := v.creds.Config(ctx, gameID)
	if err != nil {
		v.logger.Warn("game credential lookup failed, using fallback audiences", "game_id", gameID, "error", err)
		return nil
	}
	return cfg
}

func (v *Verifier) audienceHint(p domain.Provider, own, other, expected, got []string) string {
	switch {
	case len(own) > 0:
		if p == domain.ProviderSecondary {
			return "Apple bundle ID not registered for this game. Add your bundle ID in the dashboard."
		}
		return fmt.Sprintf("%s client ID not registered for this game. Add your client ID in the dashboard.", p.DisplayName())
	case slices.ContainsFunc(got, func(a string) bool { return slices.Contains(other, a) }):
		return fmt.Sprintf("Token was issued for %s, not %s", p.Other().DisplayName(), p.DisplayName())
	case p == domain.ProviderSecondary:
		return fmt.Sprintf(`Apple token audience mismatch. This may be due to "Hide My Email" selection. Expected: %s, Got: %s.`,
			expected[0], strings.Join(got, ", "))
	default:
		return fmt.Sprintf("Token audience mismatch: expected one of [%s], got: %s",
			strings.Join(expected, ", "), strings.Join(got, ", "))
	}
}

func notConfiguredHint(p domain.Provider) string {
	if p == domain.ProviderSecondary {
		return "Apple Sign-In not configured for this game. Add your Apple bundle ID in the dashboard."
	}
	return fmt.Sprintf("%s Sign-In not configured for this game. Add your %s client IDs in the dashboard.", p.DisplayName(), p.DisplayName())
}

func union(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	for _, s := range slices.Concat(a, b) {
		if s != "" && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
