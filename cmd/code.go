package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/oshokin/steam-session/internal/app"
)

//nolint:gochecknoglobals // Cobra command requires a global definition.
var codeCmd = &cobra.Command{
	Use:   "code",
	Short: "Print the current Steam Guard code",
	Long: `Derives the five-character Steam Guard code for the current time
from the mobile authenticator shared secret.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		bindCredentialFlags(cmd.Flags(), appConfig)

		return app.ExecuteCodeCommand(cmd.Context(), appConfig, os.Stdout)
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	codeCmd.Flags().StringP("shared-secret", "s", "", "mobile authenticator shared secret, hex or base64.")

	rootCmd.AddCommand(codeCmd)
}
