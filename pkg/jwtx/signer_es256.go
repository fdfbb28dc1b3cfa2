package jwtx

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ES256Signer implements the Signer interface using ECDSA P-256.
type ES256Signer struct {
	kid string
	key *ecdsa.PrivateKey
}

func newES256Signer(kid string, pemKey []byte) (*ES256Signer, error) {
	block, err := decodePEM(pemKey, "ES256")
	if err != nil {
		return nil, err
	}
	priv, err := parsePKCS8(block)
	if err != nil {
		return nil, err
	}

	key, ok := priv.(*ecdsa.PrivateKey)
	if !ok {
		return nil, errors.New("jwtx: not ECDSA private key")
	}
	return &ES256Signer{kid: kid, key: key}, nil
}

func (s *ES256Signer) Alg() string { return jwt.SigningMethodES256.Alg() }
func (s *ES256Signer) KID() string { return s.kid }

func (s *ES256Signer) Sign(claims jwt.Claims) (string, error) {
	return signWithKID(jwt.SigningMethodES256, s.kid, s.key, claims)
}

func (s *ES256Signer) PublicJWK() JWK {
	return NewES256JWK(s.kid, "sig", s.Alg(), &s.key.PublicKey)
}

func (s *ES256Signer) Validate() error {
	if s.key == nil {
		return errNilKey
	}
	if name := s.key.Curve.Params().Name; name != "P-256" {
		return fmt.Errorf("jwtx: expected P-256 curve, got %s", name)
	}
	return nil
}
