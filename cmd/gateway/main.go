package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "gateway",
	Short: "Boardgate game gateway",
	Long: `gateway is the edge service in front of the game backend.

It verifies Google and Apple identity tokens, authenticates API keys and
sessions, enforces per-tier rate limits and forwards requests to the backend.

Configuration is read from the environment; see "gateway serve --help".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func main() {
	rootCmd.Version = version
	rootCmd.AddCommand(newServeCmd(), newIdentityCmd())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
