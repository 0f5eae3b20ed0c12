package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:     "token <user-id>",
	Short:   "Issue a bearer token for a user",
	Long:    "Signs a bearer token with the configured auth.jwt_secret. Intended for\ndevelopment and operator use.",
	Example: `  export UDAMCTL_TOKEN=$(udam token alice)`,
	Args:    cobra.ExactArgs(1),
	RunE:    runToken,
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	cfg, _, logCloser, err := loadConfig()
	if err != nil {
		return err
	}
	defer logCloser.Close()

	tokens, err := newTokens(&cfg.Auth)
	if err != nil {
		return err
	}

	signed, err := tokens.Issue(args[0])
	if err != nil {
		return fmt.Errorf("issuing token: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)
	return err
}
