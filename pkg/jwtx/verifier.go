package jwtx

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrUnknownKID  = errors.New("jwtx: unknown kid")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// Header is the part of the JOSE header we route on.
type Header struct {
	Alg string
	Kid string
}

// DecodeUnverified splits a compact token and decodes its header and
// payload without checking the signature. Nothing it returns may be trusted
// until VerifySignature succeeds.
func DecodeUnverified(token string) (Header, *IdentityClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return Header{}, nil, ErrMalformed
	}

	claims := &IdentityClaims{}
	t, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return Header{}, nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	alg, _ := t.Header["alg"].(string)
	kid, _ := t.Header["kid"].(string)
	return Header{Alg: alg, Kid: kid}, claims, nil
}

// VerifySignature checks the token signature with the key registered for
// its kid. Only the listed methods are accepted. Claims are deliberately
// left unvalidated; issuer, audience and expiry policy belong to the caller.
func VerifySignature(token string, keys *KeySet, methods ...string) (*IdentityClaims, error) {
	hdr, _, err := DecodeUnverified(token)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(methods, hdr.Alg) {
		return nil, fmt.Errorf("%w: %q", ErrAlgMismatch, hdr.Alg)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods(methods),
		jwt.WithoutClaimsValidation(),
	)

	var keyErr error
	parsed, err := parser.ParseWithClaims(token, &IdentityClaims{}, func(t *jwt.Token) (any, error) {
		pub, err := lookupKey(keys, t)
		if err != nil {
			keyErr = err
		}
		return pub, err
	})
	if err != nil {
		switch {
		case keyErr != nil:
			return nil, keyErr
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSig
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidSig, err)
		}
	}

	claims, ok := parsed.Claims.(*IdentityClaims)
	if !ok {
		return nil, ErrInvalidClaim
	}
	return claims, nil
}

// VerifyService validates an EdDSA service assertion: signature, issuer,
// audience and time claims.
func VerifyService(token string, keys *KeySet, issuer, audience string, now time.Time) (*ServiceClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)

	parsed, err := parser.ParseWithClaims(token, &ServiceClaims{}, func(t *jwt.Token) (any, error) {
		return lookupKey(keys, t)
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenInvalidIssuer):
			return nil, ErrIssuer
		case errors.Is(err, jwt.ErrTokenInvalidAudience):
			return nil, ErrAudience
		case errors.Is(err, ErrUnknownKID):
			return nil, ErrUnknownKID
		default:
			return nil, fmt.Errorf("jwtx: parse or verify: %w", err)
		}
	}

	claims, ok := parsed.Claims.(*ServiceClaims)
	if !ok {
		return nil, ErrInvalidClaim
	}
	return claims, nil
}

// lookupKey finds the key for the token's kid and makes sure its type fits
// the signing method, so an RSA kid can never verify an EdDSA token.
func lookupKey(keys *KeySet, t *jwt.Token) (any, error) {
	kid, _ := t.Header["kid"].(string)
	if kid == "" {
		return nil, fmt.Errorf("%w: missing kid", ErrUnknownKID)
	}

	pub, err := keys.Get(kid)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrUnknownKID, kid, err)
	}

	var ok bool
	switch t.Method.(type) {
	case *jwt.SigningMethodRSA:
		_, ok = pub.(*rsa.PublicKey)
	case *jwt.SigningMethodECDSA:
		_, ok = pub.(*ecdsa.PublicKey)
	case *jwt.SigningMethodEd25519:
		_, ok = pub.(ed25519.PublicKey)
	}
	if !ok {
		return nil, fmt.Errorf("%w: key %q cannot verify %s", ErrAlgMismatch, kid, t.Method.Alg())
	}
	return pub, nil
}
