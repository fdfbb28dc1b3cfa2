package jwtx_test

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/boardgate/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func newRSASigner(t *testing.T, kid string) jwtx.Signer {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pemKey := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	s, err := jwtx.NewSignerRS256(kid, pemKey)
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	return s
}

func newES256Signer(t *testing.T, kid string) jwtx.Signer {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	s, err := jwtx.NewSignerES256(kid, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	return s
}

func newEdDSASigner(t *testing.T, kid string) jwtx.Signer {
	t.Helper()
	_, key, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	s, err := jwtx.NewSignerEdDSA(kid, pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
	require.NoError(t, err)
	require.NoError(t, s.Validate())
	return s
}

func identityClaims(now time.Time) jwtx.IdentityClaims {
	return jwtx.IdentityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://accounts.google.com",
			Subject:   "1234567890",
			Audience:  jwt.ClaimStrings{"client.apps.googleusercontent.com"},
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		Email: "player@example.com",
	}
}

func TestVerifySignature(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	rs := newRSASigner(t, "rsa-1")
	es := newES256Signer(t, "ec-1")

	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(rs))
	require.NoError(t, keys.AddSigner(es))

	t.Run("RS256", func(t *testing.T) {
		token, err := rs.Sign(identityClaims(now))
		require.NoError(t, err)

		claims, err := jwtx.VerifySignature(token, keys, "RS256", "ES256")
		require.NoError(t, err)
		require.Equal(t, "1234567890", claims.Subject)
		require.Equal(t, "player@example.com", claims.Email)
	})

	t.Run("ES256", func(t *testing.T) {
		token, err := es.Sign(identityClaims(now))
		require.NoError(t, err)

		_, err = jwtx.VerifySignature(token, keys, "RS256", "ES256")
		require.NoError(t, err)
	})

	t.Run("expired token still has a valid signature", func(t *testing.T) {
		c := identityClaims(now)
		c.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Hour))
		token, err := rs.Sign(c)
		require.NoError(t, err)

		_, err = jwtx.VerifySignature(token, keys, "RS256")
		require.NoError(t, err)
	})

	t.Run("unknown kid", func(t *testing.T) {
		token, err := newRSASigner(t, "rotated").Sign(identityClaims(now))
		require.NoError(t, err)

		_, err = jwtx.VerifySignature(token, keys, "RS256")
		require.ErrorIs(t, err, jwtx.ErrUnknownKID)
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("tampered payload", func(t *testing.T) {
		token, err := rs.Sign(identityClaims(now))
		require.NoError(t, err)

		other := identityClaims(now)
		other.Subject = "attacker"
		forged, err := rs.Sign(other)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		forgedParts := strings.Split(forged, ".")
		spliced := parts[0] + "." + forgedParts[1] + "." + parts[2]

		_, err = jwtx.VerifySignature(spliced, keys, "RS256")
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("algorithm not accepted", func(t *testing.T) {
		token, err := es.Sign(identityClaims(now))
		require.NoError(t, err)

		_, err = jwtx.VerifySignature(token, keys, "RS256")
		require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
	})

	t.Run("kid points at a key of another type", func(t *testing.T) {
		impostor := newES256Signer(t, "rsa-1")
		token, err := impostor.Sign(identityClaims(now))
		require.NoError(t, err)

		_, err = jwtx.VerifySignature(token, keys, "RS256", "ES256")
		require.ErrorIs(t, err, jwtx.ErrAlgMismatch)
	})
}

func TestDecodeUnverified(t *testing.T) {
	t.Parallel()

	rs := newRSASigner(t, "rsa-1")
	token, err := rs.Sign(identityClaims(time.Now()))
	require.NoError(t, err)

	hdr, claims, err := jwtx.DecodeUnverified(token)
	require.NoError(t, err)
	require.Equal(t, "RS256", hdr.Alg)
	require.Equal(t, "rsa-1", hdr.Kid)
	require.Equal(t, "1234567890", claims.Subject)

	for _, bad := range []string{"", "abc", "a.b", "a.b.c.d", "..", "x.y.z"} {
		_, _, err := jwtx.DecodeUnverified(bad)
		require.ErrorIs(t, err, jwtx.ErrMalformed, "token %q", bad)
	}
}

func TestVerifyService(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	signer := newEdDSASigner(t, "gateway-1")
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	token, err := signer.Sign(jwtx.NewServiceClaims("gateway", "backend", "getGame", time.Minute, now))
	require.NoError(t, err)

	claims, err := jwtx.VerifyService(token, keys, "gateway", "backend", now)
	require.NoError(t, err)
	require.Equal(t, "getGame", claims.Method)

	_, err = jwtx.VerifyService(token, keys, "gateway", "someone-else", now)
	require.ErrorIs(t, err, jwtx.ErrAudience)

	_, err = jwtx.VerifyService(token, keys, "impostor", "backend", now)
	require.ErrorIs(t, err, jwtx.ErrIssuer)

	_, err = jwtx.VerifyService(token, keys, "gateway", "backend", now.Add(2*time.Minute))
	require.ErrorIs(t, err, jwtx.ErrExpired)
}
