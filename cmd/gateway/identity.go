package main

import (
	"encoding/json"
	"fmt"

	"github.com/aussiebroadwan/boardgate/pkg/cryptox"
	"github.com/aussiebroadwan/boardgate/pkg/jwtx"
	"github.com/spf13/cobra"
)

func newIdentityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "identity",
		Short: "Manage the gateway signing identity",
	}
	cmd.AddCommand(newIdentityGenerateCmd())
	return cmd
}

func newIdentityGenerateCmd() *cobra.Command {
	var kid string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh Ed25519 signing identity",
		Long: `Generate a fresh Ed25519 signing identity.

The private key is printed as PKCS8 PEM on stdout for GATEWAY_IDENTITY. The
public JWK printed after it is what the backend needs to trust the gateway's
assertions.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pemKey, err := cryptox.GenerateEd25519Key()
			if err != nil {
				return err
			}
			signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
			if err != nil {
				return err
			}
			jwk, err := json.MarshalIndent(signer.PublicJWK(), "", "  ")
			if err != nil {
				return fmt.Errorf("encode public jwk: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, string(pemKey))
			fmt.Fprintln(out)
			fmt.Fprintln(out, string(jwk))
			return nil
		},
	}
	cmd.Flags().StringVar(&kid, "kid", "gateway", "key id stamped on assertions (GATEWAY_IDENTITY_KID)")
	return cmd
}
