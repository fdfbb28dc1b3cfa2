package domain

import "strings"

// Provider names an identity provider. The primary provider is Google, the
// secondary is Sign in with Apple.
type Provider string

const (
	ProviderPrimary   Provider = "google"
	ProviderSecondary Provider = "apple"
)

// ParseProvider accepts provider names case-insensitively.
func ParseProvider(s string) (Provider, bool) {
	switch Provider(strings.ToLower(strings.TrimSpace(s))) {
	case ProviderPrimary:
		return ProviderPrimary, true
	case ProviderSecondary:
		return ProviderSecondary, true
	}
	return "", false
}

func (p Provider) String() string { return string(p) }

// DisplayName is the provider name used in user-facing messages.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderPrimary:
		return "Google"
	case ProviderSecondary:
		return "Apple"
	}
	return string(p)
}

// Other returns the opposite provider.
func (p Provider) Other() Provider {
	if p == ProviderPrimary {
		return ProviderSecondary
	}
	return ProviderPrimary
}

// VerifiedIdentity is the result of a successful token verification. It is
// consumed immediately to create a backend session and never stored.
type VerifiedIdentity struct {
	Subject             string   `json:"sub"`
	Email               string   `json:"email,omitempty"`
	Name                string   `json:"name,omitempty"`
	Provider            Provider `json:"provider"`
	IsPrivateRelayEmail bool     `json:"isPrivateRelay"`
	Audience            string   `json:"audience"`
}

// GameCredentialConfig lists the provider client identifiers a game has
// registered with the backend.
type GameCredentialConfig struct {
	ProviderAudiences []string `json:"providerAudiences"`
	SecondaryBundleID string   `json:"secondaryBundleId,omitempty"`
	SecondaryTeamID   string   `json:"secondaryTeamId,omitempty"`
}

// Audiences returns the game's own audiences for p. Safe on a nil config.
func (c *GameCredentialConfig) Audiences(p Provider) []string {
	if c == nil {
		return nil
	}
	switch p {
	case ProviderPrimary:
		return c.ProviderAudiences
	case ProviderSecondary:
		if c.SecondaryBundleID != "" {
			return []string{c.SecondaryBundleID}
		}
	}
	return nil
}
