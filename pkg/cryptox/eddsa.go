package cryptox

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidIdentity = errors.New("cryptox: invalid signing identity")

// GenerateEd25519Key generates a new Ed25519 private key and returns it in
// PEM format (PKCS8).
func GenerateEd25519Key() ([]byte, error) {
	_, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to generate Ed25519 key: %w", err)
	}

	privateKeyBytes, err := x509.MarshalPKCS8PrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("cryptox: failed to marshal PKCS8 key: %w", err)
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: privateKeyBytes,
	}), nil
}

// DecodeIdentityBlob normalises a provisioned signing identity into PKCS8
// PEM. Deployment platforms mangle multi-line secrets, so three encodings are
// accepted: raw PEM, PEM with literal "\n" escapes, and base64 of the PEM.
func DecodeIdentityBlob(blob string) ([]byte, error) {
	blob = strings.TrimSpace(blob)
	if blob == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidIdentity)
	}

	raw := []byte(strings.ReplaceAll(blob, `\n`, "\n"))
	if !bytes.HasPrefix(raw, []byte("-----BEGIN")) {
		decoded, err := base64.StdEncoding.DecodeString(blob)
		if err != nil {
			return nil, fmt.Errorf("%w: neither PEM nor base64", ErrInvalidIdentity)
		}
		raw = decoded
	}

	block, _ := pem.Decode(raw)
	if block == nil || block.Type != "PRIVATE KEY" {
		return nil, fmt.Errorf("%w: expected a PKCS8 PRIVATE KEY block", ErrInvalidIdentity)
	}
	key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
	}
	if _, ok := key.(ed25519.PrivateKey); !ok {
		return nil, fmt.Errorf("%w: not an Ed25519 key", ErrInvalidIdentity)
	}

	return pem.EncodeToMemory(block), nil
}
