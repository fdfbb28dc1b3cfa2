package jwtx

import (
	"bytes"
	"crypto/rand"
	"encoding/base64"
	"slices"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultAssertionTTL is the lifetime of the service assertions the gateway
// presents to the backend. Kept short since a fresh one is minted per call.
const DefaultAssertionTTL = time.Minute

// IdentityClaims are the claims carried by third-party identity tokens
// (Google ID tokens, Sign in with Apple identity tokens).
type IdentityClaims struct {
	jwt.RegisteredClaims

	Email         string   `json:"email,omitempty"`
	EmailVerified FlexBool `json:"email_verified,omitempty"`
	Name          string   `json:"name,omitempty"`

	// Nonce echoes the value the client passed to the provider at sign-in.
	Nonce string `json:"nonce,omitempty"`

	// IsPrivateEmail is Apple's marker for "Hide My Email" relay addresses.
	IsPrivateEmail FlexBool `json:"is_private_email,omitempty"`
}

// ServiceClaims are the claims of the short-lived assertion a service signs
// with its own identity to authenticate itself to another service.
type ServiceClaims struct {
	jwt.RegisteredClaims

	// Method names the RPC operation the assertion was minted for.
	Method string `json:"mth,omitempty"`
}

// NewServiceClaims builds minimally-correct assertion claims.
func NewServiceClaims(issuer, audience, method string, ttl time.Duration, now time.Time) ServiceClaims {
	return ServiceClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Method: method,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks the issuer is one of the expected values.
func (c *IdentityClaims) ValidateIssuer(expected ...string) error {
	if len(expected) == 0 {
		return nil // nothing to enforce
	}
	if slices.Contains(expected, c.Issuer) {
		return nil
	}
	return ErrIssuer
}

// MatchAudience returns the first token audience present in allowed.
func (c *IdentityClaims) MatchAudience(allowed []string) (string, error) {
	for _, aud := range c.Audience {
		if slices.Contains(allowed, aud) {
			return aud, nil
		}
	}
	return "", ErrAudience
}

// ValidateExpiry ensures exp is strictly after now. Tokens without exp are
// rejected: every provider we accept sets it.
func (c *IdentityClaims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil || !c.ExpiresAt.After(now) {
		return ErrExpired
	}
	return nil
}

// FlexBool decodes booleans that some providers send as strings
// ("true"/"false") and others as JSON booleans.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*b = false
		return nil
	}
	v, err := strconv.ParseBool(string(data))
	if err != nil {
		return ErrInvalidClaim
	}
	*b = FlexBool(v)
	return nil
}
