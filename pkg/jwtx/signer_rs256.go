package jwtx

import (
	"crypto/rsa"
	"crypto/x509"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// RS256Signer implements the Signer interface using RSA SHA-256, the
// algorithm both identity providers sign with.
type RS256Signer struct {
	kid string
	key *rsa.PrivateKey
}

// newRS256Signer handles both PKCS1 and PKCS8 PEM blocks.
func newRS256Signer(kid string, pemKey []byte) (*RS256Signer, error) {
	block, err := decodePEM(pemKey, "RSA")
	if err != nil {
		return nil, err
	}

	var key *rsa.PrivateKey
	switch block.Type {
	case "RSA PRIVATE KEY":
		key, err = x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("jwtx: parse RSA key: %w", err)
		}
	default:
		priv, err := parsePKCS8(block)
		if err != nil {
			return nil, err
		}
		rk, ok := priv.(*rsa.PrivateKey)
		if !ok {
			return nil, errors.New("jwtx: not RSA private key")
		}
		key = rk
	}

	return &RS256Signer{kid: kid, key: key}, nil
}

func (s *RS256Signer) Alg() string { return jwt.SigningMethodRS256.Alg() }
func (s *RS256Signer) KID() string { return s.kid }

func (s *RS256Signer) Sign(claims jwt.Claims) (string, error) {
	return signWithKID(jwt.SigningMethodRS256, s.kid, s.key, claims)
}

func (s *RS256Signer) PublicJWK() JWK {
	return NewRSAJWK(s.kid, "sig", s.Alg(), &s.key.PublicKey)
}

func (s *RS256Signer) Validate() error {
	if s.key == nil {
		return errNilKey
	}
	return s.key.Validate()
}
