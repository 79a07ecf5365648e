package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/steam-session/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to Steam Community and print the session cookies",
	Long: `Signs in with the account name and password, answering Steam Guard
with a code derived from the shared secret or the one passed with --code.

The password is read from STEAM_PASSWORD unless --password is given.

Examples:
  STEAM_PASSWORD=... steam-session login -a gaben -s <shared secret>
  steam-session login -a gaben --code 5XK2Q -o json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bindCredentialFlags(cmd.Flags(), appConfig)

		format, err := outputFormatFlag(cmd.Flags())
		if err != nil {
			return fmt.Errorf("failed to parse flags: %w", err)
		}

		return app.ExecuteLoginCommand(cmd.Context(), appConfig, format, os.Stdout)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	loginFlags := loginCmd.Flags()

	addCredentialFlags(loginFlags)
	loginFlags.StringP("output", "o", "", "output format: table, json or yaml.")

	rootCmd.AddCommand(loginCmd)
}
