package identity_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/aussiebroadwan/boardgate/internal/gateway/identity"
	"github.com/aussiebroadwan/boardgate/pkg/jwtx"
	"github.com/aussiebroadwan/boardgate/pkg/slogx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	googleClient = "123-abc.apps.googleusercontent.com"
	appleBundle  = "com.example.game"
)

func rsaSigner(t *testing.T, kid string) jwtx.Signer {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	s, err := jwtx.NewSignerRS256(kid, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
	require.NoError(t, err)
	return s
}

// jwksServer publishes a mutable key set and counts fetches.
type jwksServer struct {
	mu      sync.Mutex
	keys    jwtx.JWKS
	status  int
	fetches atomic.Int32
}

func (s *jwksServer) publish(signers ...jwtx.Signer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.keys = jwtx.JWKS{}
	for _, sg := range signers {
		s.keys.Keys = append(s.keys.Keys, sg.PublicJWK())
	}
}

func (s *jwksServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.fetches.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != 0 {
		w.WriteHeader(s.status)
		return
	}
	_ = json.NewEncoder(w).Encode(s.keys)
}

type fakeCreds map[string]*domain.GameCredentialConfig

func (f fakeCreds) Config(_ context.Context, gameID string) (*domain.GameCredentialConfig, error) {
	if gameID == "broken" {
		return nil, errors.New("backend down")
	}
	return f[gameID], nil
}

type fixture struct {
	now      time.Time
	clock    func() time.Time
	jwks     *jwksServer
	signer   jwtx.Signer
	verifier *identity.Verifier
}

func newFixture(t *testing.T, strictNonce bool) *fixture {
	t.Helper()

	f := &fixture{now: time.Unix(1_700_000_000, 0), jwks: &jwksServer{}}
	f.clock = func() time.Time { return f.now }
	f.signer = rsaSigner(t, "k1")
	f.jwks.publish(f.signer)

	srv := httptest.NewServer(f.jwks)
	t.Cleanup(srv.Close)

	providers := identity.DefaultProviders()
	for p, spec := range providers {
		spec.JWKSURL = srv.URL + "/" + string(p)
		providers[p] = spec
	}

	keyring := identity.NewKeyring(providers, time.Second, identity.WithKeyringClock(f.clock))
	f.verifier = identity.NewVerifier(identity.VerifierConfig{
		Providers: providers,
		Keyring:   keyring,
		Credentials: fakeCreds{
			"own-google": {ProviderAudiences: []string{"own.apps.googleusercontent.com"}},
			"own-apple":  {SecondaryBundleID: "com.example.own"},
		},
		FallbackAudiences: map[domain.Provider][]string{
			domain.ProviderPrimary:   {googleClient},
			domain.ProviderSecondary: {appleBundle},
		},
		StrictNonce: strictNonce,
		Now:         f.clock,
		Logger:      slogx.Discard(),
	})

	return f
}

func googleClaims(now time.Time) jwtx.IdentityClaims {
	return jwtx.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://accounts.google.com",
			Subject:   "g-123",
			Audience:  jwt.ClaimStrings{googleClient},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email: "player@example.com",
		Name:  "Player One",
	}
}

func appleClaims(now time.Time) jwtx.IdentityClaims {
	return jwtx.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://appleid.apple.com",
			Subject:   "a-456",
			Audience:  jwt.ClaimStrings{appleBundle},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Nonce: "n-1",
	}
}

func sign(t *testing.T, s jwtx.Signer, c jwtx.IdentityClaims) string {
	t.Helper()
	tok, err := s.Sign(c)
	require.NoError(t, err)
	return tok
}

func requireKind(t *testing.T, err error, kind identity.Kind) *identity.VerificationError {
	t.Helper()
	var verr *identity.VerificationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, kind, verr.Kind, verr.Hint)
	return verr
}

func TestVerifyPrimaryHappyPath(t *testing.T) {
	f := newFixture(t, false)

	id, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{
		Provider: domain.ProviderPrimary,
		RawToken: sign(t, f.signer, googleClaims(f.now)),
		GameID:   "g1",
	})
	require.NoError(t, err)
	require.Equal(t, domain.VerifiedIdentity{
		Subject:  "g-123",
		Email:    "player@example.com",
		Provider: domain.ProviderPrimary,
		Audience: googleClient,
	}, id)
	require.EqualValues(t, 1, f.jwks.fetches.Load())

	// second verification is served from the keyring
	_, err = f.verifier.Verify(t.Context(), identity.VerifyRequest{
		Provider: domain.ProviderPrimary,
		RawToken: sign(t, f.signer, googleClaims(f.now)),
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, f.jwks.fetches.Load())
}

func TestVerifyExpiryBeforeSignature(t *testing.T) {
	f := newFixture(t, false)

	c := googleClaims(f.now)
	c.ExpiresAt = jwt.NewNumericDate(f.now.Add(-time.Second))
	// signed by a key the provider never published
	tok := sign(t, rsaSigner(t, "rogue"), c)

	_, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: tok})
	verr := requireKind(t, err, identity.KindTokenExpired)
	require.Equal(t, http.StatusUnauthorized, verr.Status())
	require.Zero(t, f.jwks.fetches.Load())

	c.ExpiresAt = jwt.NewNumericDate(f.now)
	_, err = f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: sign(t, f.signer, c)})
	requireKind(t, err, identity.KindTokenExpired)
}

func TestVerifyAudienceMismatchFailsFast(t *testing.T) {
	f := newFixture(t, false)

	t.Run("generic", func(t *testing.T) {
		c := googleClaims(f.now)
		c.Audience = jwt.ClaimStrings{"someone-else"}
		_, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: sign(t, f.signer, c)})
		verr := requireKind(t, err, identity.KindAudienceMismatch)
		require.Contains(t, verr.Hint, googleClient)
		require.Contains(t, verr.Hint, "someone-else")
	})

	t.Run("game registered its own", func(t *testing.T) {
		c := googleClaims(f.now)
		c.Audience = jwt.ClaimStrings{"someone-else"}
		_, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: sign(t, f.signer, c), GameID: "own-google"})
		verr := requireKind(t, err, identity.KindAudienceMismatch)
		require.Contains(t, verr.Hint, "not registered for this game")
	})

	t.Run("other provider", func(t *testing.T) {
		c := googleClaims(f.now)
		c.Audience = jwt.ClaimStrings{appleBundle}
		_, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: sign(t, f.signer, c)})
		verr := requireKind(t, err, identity.KindAudienceMismatch)
		require.Equal(t, "Token was issued for Apple, not Google", verr.Hint)
	})

	t.Run("secondary", func(t *testing.T) {
		c := appleClaims(f.now)
		c.Audience = jwt.ClaimStrings{"com.example.web"}
		_, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderSecondary, RawToken: sign(t, f.signer, c)})
		verr := requireKind(t, err, identity.KindAudienceMismatch)
		require.Contains(t, verr.Hint, "Hide My Email")
	})

	require.Zero(t, f.jwks.fetches.Load())
}

func TestVerifyGameAudiences(t *testing.T) {
	f := newFixture(t, false)

	c := googleClaims(f.now)
	c.Audience = jwt.ClaimStrings{"own.apps.googleusercontent.com"}
	id, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: sign(t, f.signer, c), GameID: "own-google"})
	require.NoError(t, err)
	require.Equal(t, "own.apps.googleusercontent.com", id.Audience)

	// credential lookup failure falls back to the deployment audiences
	_, err = f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: sign(t, f.signer, googleClaims(f.now)), GameID: "broken"})
	require.NoError(t, err)
}

func TestVerifyProviderNotConfigured(t *testing.T) {
	f := newFixture(t, false)
	v := identity.NewVerifier(identity.VerifierConfig{Logger: slogx.Discard(), Now: f.clock})

	_, err := v.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: sign(t, f.signer, googleClaims(f.now))})
	verr := requireKind(t, err, identity.KindProviderNotConfigured)
	require.Equal(t, http.StatusBadRequest, verr.Status())
}

func TestVerifyMalformed(t *testing.T) {
	f := newFixture(t, false)

	for _, tok := range []string{"", "abc", "a.b", "a.b.c", "..."} {
		_, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderSecondary, RawToken: tok})
		verr := requireKind(t, err, identity.KindMalformedToken)
		require.Equal(t, http.StatusBadRequest, verr.Status())
	}
}

func TestVerifySignatureAndIssuer(t *testing.T) {
	f := newFixture(t, false)

	t.Run("forged with a published kid", func(t *testing.T) {
		tok := sign(t, rsaSigner(t, "k1"), googleClaims(f.now))
		_, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: tok})
		requireKind(t, err, identity.KindSignatureInvalid)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		c := googleClaims(f.now)
		c.Issuer = "https://evil.example.com"
		_, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: sign(t, f.signer, c)})
		verr := requireKind(t, err, identity.KindSignatureInvalid)
		require.Contains(t, verr.Hint, "issuer")
	})

	t.Run("unknown kid on a fresh key set", func(t *testing.T) {
		tok := sign(t, rsaSigner(t, "k9"), googleClaims(f.now))
		_, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: tok})
		requireKind(t, err, identity.KindKeyNotFound)
	})
}

func TestVerifyRefreshesOnRotation(t *testing.T) {
	var (
		mu  sync.Mutex
		now = time.Unix(1_700_000_000, 0)
	)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return now
	}

	old := rsaSigner(t, "old")
	jwks := &jwksServer{}
	jwks.publish(old)
	srv := httptest.NewServer(jwks)
	t.Cleanup(srv.Close)

	providers := identity.DefaultProviders()
	spec := providers[domain.ProviderPrimary]
	spec.JWKSURL = srv.URL
	providers[domain.ProviderPrimary] = spec

	v := identity.NewVerifier(identity.VerifierConfig{
		Providers:         providers,
		Keyring:           identity.NewKeyring(providers, time.Second, identity.WithKeyringClock(clock)),
		FallbackAudiences: map[domain.Provider][]string{domain.ProviderPrimary: {googleClient}},
		Now:               clock,
		Logger:            slogx.Discard(),
	})

	_, err := v.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: sign(t, old, googleClaims(clock()))})
	require.NoError(t, err)

	rotated := rsaSigner(t, "new")
	jwks.publish(old, rotated)

	mu.Lock()
	now = now.Add(2 * time.Minute)
	mu.Unlock()

	_, err = v.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: sign(t, rotated, googleClaims(clock()))})
	require.NoError(t, err)
	require.EqualValues(t, 2, jwks.fetches.Load())
}

func TestVerifyKeysUnavailable(t *testing.T) {
	f := newFixture(t, false)
	f.jwks.status = http.StatusInternalServerError

	_, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderPrimary, RawToken: sign(t, f.signer, googleClaims(f.now))})
	verr := requireKind(t, err, identity.KindKeysUnavailable)
	require.Equal(t, http.StatusServiceUnavailable, verr.Status())
}

func TestVerifySecondary(t *testing.T) {
	t.Run("placeholder email", func(t *testing.T) {
		f := newFixture(t, false)
		id, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{
			Provider:      domain.ProviderSecondary,
			RawToken:      sign(t, f.signer, appleClaims(f.now)),
			ExpectedNonce: "n-1",
		})
		require.NoError(t, err)
		require.Equal(t, "apple:a-456@apple.local", id.Email)
		require.False(t, id.IsPrivateRelayEmail)
	})

	t.Run("private relay", func(t *testing.T) {
		f := newFixture(t, false)
		c := appleClaims(f.now)
		c.Email = "xyz@privaterelay.appleid.com"
		id, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderSecondary, RawToken: sign(t, f.signer, c)})
		require.NoError(t, err)
		require.True(t, id.IsPrivateRelayEmail)

		c.Email = "someone@example.com"
		c.IsPrivateEmail = true
		id, err = f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderSecondary, RawToken: sign(t, f.signer, c)})
		require.NoError(t, err)
		require.True(t, id.IsPrivateRelayEmail)
	})

	t.Run("nonce mismatch", func(t *testing.T) {
		f := newFixture(t, false)
		_, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{
			Provider:      domain.ProviderSecondary,
			RawToken:      sign(t, f.signer, appleClaims(f.now)),
			ExpectedNonce: "n-2",
		})
		requireKind(t, err, identity.KindNonceMismatch)
	})

	t.Run("missing nonce tolerated unless strict", func(t *testing.T) {
		f := newFixture(t, false)
		c := appleClaims(f.now)
		c.Nonce = ""
		req := identity.VerifyRequest{Provider: domain.ProviderSecondary, RawToken: sign(t, f.signer, c), ExpectedNonce: "n-1"}

		_, err := f.verifier.Verify(t.Context(), req)
		require.NoError(t, err)

		strict := newFixture(t, true)
		req.RawToken = sign(t, strict.signer, c)
		_, err = strict.verifier.Verify(t.Context(), req)
		requireKind(t, err, identity.KindNonceMismatch)
	})

	t.Run("missing subject", func(t *testing.T) {
		f := newFixture(t, false)
		c := appleClaims(f.now)
		c.Subject = ""
		_, err := f.verifier.Verify(t.Context(), identity.VerifyRequest{Provider: domain.ProviderSecondary, RawToken: sign(t, f.signer, c)})
		requireKind(t, err, identity.KindMissingSubject)
	})
}
