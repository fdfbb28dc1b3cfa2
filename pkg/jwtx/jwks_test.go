package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJWKPublicKeyRoundTrip(t *testing.T) {
	t.Run("RSA", func(t *testing.T) {
		priv, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)

		key, err := NewRSAJWK("r", "sig", "RS256", &priv.PublicKey).PublicKey()
		require.NoError(t, err)

		pub, ok := key.(*rsa.PublicKey)
		require.True(t, ok)
		require.True(t, priv.PublicKey.Equal(pub))
	})

	t.Run("Ed25519", func(t *testing.T) {
		pubKey, _, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		key, err := NewEd25519JWK("e", "sig", "EdDSA", pubKey).PublicKey()
		require.NoError(t, err)
		require.Equal(t, pubKey, key)
	})

	t.Run("ES256", func(t *testing.T) {
		priv, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)

		jwk := NewES256JWK("c", "sig", "ES256", &priv.PublicKey)
		require.Len(t, jwk.X, 43) // 32 bytes, padded
		require.Len(t, jwk.Y, 43)

		key, err := jwk.PublicKey()
		require.NoError(t, err)
		require.True(t, priv.PublicKey.Equal(key))
	})
}

func TestJWKPublicKeyRejectsUnsupported(t *testing.T) {
	tests := []struct {
		name string
		jwk  JWK
	}{
		{"unknown kty", JWK{Kty: "oct"}},
		{"OKP other curve", JWK{Kty: "OKP", Crv: "X25519", X: "AAAA"}},
		{"EC other curve", JWK{Kty: "EC", Crv: "P-384", X: "AAAA", Y: "AAAA"}},
		{"bad base64", JWK{Kty: "RSA", N: "!!!", E: "AQAB"}},
		{"empty RSA", JWK{Kty: "RSA"}},
		{"short Ed25519", JWK{Kty: "OKP", Crv: "Ed25519", X: "AAAA"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.jwk.PublicKey()
			require.Error(t, err)
		})
	}
}

func TestNewKeySetFromJWKS(t *testing.T) {
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	good := NewRSAJWK("good", "sig", "RS256", &priv.PublicKey)

	t.Run("skips unusable keys", func(t *testing.T) {
		ks, err := NewKeySetFromJWKS(JWKS{Keys: []JWK{{Kty: "oct", Kid: "sym"}, good}})
		require.NoError(t, err)
		require.Equal(t, 1, ks.Len())

		_, err = ks.Get("good")
		require.NoError(t, err)

		_, err = ks.Get("sym")
		require.ErrorIs(t, err, ErrNoKey)
		require.Len(t, ks.PublicJWKS().Keys, 1)
	})

	t.Run("no usable keys", func(t *testing.T) {
		_, err := NewKeySetFromJWKS(JWKS{Keys: []JWK{{Kty: "oct"}}})
		require.Error(t, err)

		_, err = NewKeySetFromJWKS(JWKS{})
		require.Error(t, err)
	})

	t.Run("reset replaces previous keys", func(t *testing.T) {
		ks := NewKeySet()
		require.NoError(t, ks.AddJWK(good))

		other, err := rsa.GenerateKey(rand.Reader, 2048)
		require.NoError(t, err)
		require.NoError(t, ks.ResetFromJWKS(JWKS{Keys: []JWK{NewRSAJWK("next", "sig", "RS256", &other.PublicKey)}}))

		_, err = ks.Get("good")
		require.ErrorIs(t, err, ErrNoKey)
		_, err = ks.Get("next")
		require.NoError(t, err)
	})
}
