// Package identity verifies identity tokens issued by the supported sign-in
// providers and turns them into a domain.VerifiedIdentity.
package identity

import (
	"github.com/aussiebroadwan/boardgate/internal/gateway/domain"
	"github.com/golang-jwt/jwt/v5"
)

// ProviderSpec is the static description of one identity provider.
type ProviderSpec struct {
	Name    domain.Provider
	Issuers []string
	JWKSURL string
	// Methods lists the signing algorithms accepted from this provider.
	Methods []string
}

// DefaultProviders returns the production provider table.
func DefaultProviders() map[domain.Provider]ProviderSpec {
	return map[domain.Provider]ProviderSpec{
		domain.ProviderPrimary: {
			Name:    domain.ProviderPrimary,
			Issuers: []string{"https://accounts.google.com", "accounts.google.com"},
			JWKSURL: "https://www.googleapis.com/oauth2/v3/certs",
			Methods: []string{jwt.SigningMethodRS256.Alg(), jwt.SigningMethodES256.Alg()},
		},
		domain.ProviderSecondary: {
			Name:    domain.ProviderSecondary,
			Issuers: []string{"https://appleid.apple.com"},
			JWKSURL: "https://appleid.apple.com/auth/keys",
			Methods: []string{jwt.SigningMethodRS256.Alg(), jwt.SigningMethodES256.Alg()},
		},
	}
}
