package cryptox

import (
	"crypto/sha256"
	"encoding/base64"
)

// FingerprintToken returns a deterministic SHA-256 fingerprint of a token,
// base64url encoded (43 chars). Credentials are keyed and logged by
// fingerprint so raw API keys never sit in long-lived maps or log lines.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// ShortFingerprint is the first 12 characters of FingerprintToken, enough to
// correlate log lines for one credential.
func ShortFingerprint(token string) string {
	return FingerprintToken(token)[:12]
}
