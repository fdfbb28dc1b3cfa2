package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aussiebroadwan/boardgate/pkg/cryptox"
	"github.com/aussiebroadwan/boardgate/pkg/jwtx"
)

// LoadSigningIdentity builds the gateway's signing identity from the inline
// blob, or from IdentityFile when no blob is set. The identity is
// provisioned externally and never generated at startup.
func LoadSigningIdentity(cfg Config, logger *slog.Logger) (jwtx.Signer, error) {
	blob := cfg.Identity
	source := "GATEWAY_IDENTITY"
	if blob == "" && cfg.IdentityFile != "" {
		raw, err := os.ReadFile(cfg.IdentityFile)
		if err != nil {
			return nil, fmt.Errorf("read identity file: %w", err)
		}
		blob = string(raw)
		source = cfg.IdentityFile
	}

	pemKey, err := cryptox.DecodeIdentityBlob(blob)
	if err != nil {
		return nil, fmt.Errorf("decode identity from %s: %w", source, err)
	}

	signer, err := jwtx.NewSignerEdDSA(cfg.IdentityKID, pemKey)
	if err != nil {
		return nil, fmt.Errorf("load identity: %w", err)
	}

	logger.Info("signing identity loaded", "source", source, "kid", signer.KID(), "alg", signer.Alg())
	return signer, nil
}
