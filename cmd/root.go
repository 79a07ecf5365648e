package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/steam-session/internal/app"
	"github.com/oshokin/steam-session/internal/config"
	"github.com/oshokin/steam-session/internal/logger"
	"github.com/oshokin/steam-session/internal/version"
)

var (
	//nolint:gochecknoglobals // It is required for configuration initialization before the application starts.
	configFilenameFromFlag string

	//nolint:gochecknoglobals,lll // It is initialized once during the application's startup and shared across the command execution logic.
	appConfig *config.Config

	//nolint:gochecknoglobals,lll // Cobra command requires a global definition for proper command-line parsing and execution.
	rootCmd = &cobra.Command{
		Use:   "steam-session",
		Short: "Log in to Steam Community and work with the market on behalf of an account.",
		Long: `Steam Session is a CLI tool that signs in to Steam Community the way a browser does.
It can:
- Log in with a password and a mobile authenticator code, printing the session cookies
- Generate Steam Guard codes from a shared secret
- Place market buy orders
- Show the recent sales of a market item

Credentials are read from STEAM_ACCOUNT_NAME, STEAM_PASSWORD, STEAM_SHARED_SECRET
and STEAM_TWO_FACTOR_CODE, or from the matching flags.`,
		Version:           version.Full(),
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
		SilenceErrors:     true,
		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	}
)

var errInterrupted = errors.New("interrupted")

// Execute executes the root command and exits non-zero when it fails.
func Execute() {
	if err := execute(); err != nil {
		os.Exit(1)
	}
}

// execute runs the root command until it returns or a signal arrives.
// Its deferred cleanup runs before Execute decides the exit code.
func execute() error {
	signals := []os.Signal{syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM}
	ctx, stop := signal.NotifyContext(context.Background(), signals...)

	defer func() {
		_ = logger.Logger().Sync()
	}()

	// Wipes sealed credentials on the way out.
	defer memguard.Purge()

	defer stop()

	errCh := make(chan error, 1)

	go func() {
		defer stop()

		errCh <- rootCmd.ExecuteContext(ctx)
	}()

	<-ctx.Done()

	var err error

	select {
	case err = <-errCh:
	default:
		err = errInterrupted
	}

	if err != nil {
		logger.Errorf(ctx, "%v", err)
	}

	return err
}

//nolint:gochecknoinits // Cobra requires the init function to set up flags before the command is executed.
func init() {
	persistentFlags := rootCmd.PersistentFlags()

	persistentFlags.StringVarP(
		&configFilenameFromFlag,
		"config",
		"c",
		"",
		fmt.Sprintf("path to the configuration file (default is '%s')",
			config.DefaultConfigFilename))

	persistentFlags.String(
		"log-level",
		"",
		"logging level: debug, info, warn, error, fatal.")

	persistentFlags.StringP(
		"proxy",
		"p",
		"",
		"HTTP proxy in the form user:password@host:port.")
}

func initConfig(cmd *cobra.Command, _ []string) error {
	var err error

	appConfig, err = config.LoadConfig(configFilenameFromFlag)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err = bindFlagsToConfig(cmd.Flags(), appConfig); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	logger.SetLevel(appConfig.ParsedLogLevel)

	return nil
}

// bindFlagsToConfig applies the flags shared by every command and validates the result.
func bindFlagsToConfig(flags *pflag.FlagSet, cfg *config.Config) error {
	if flag := flags.Lookup("log-level"); flag != nil && flag.Changed {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if flag := flags.Lookup("proxy"); flag != nil && flag.Changed {
		cfg.Proxy, _ = flags.GetString("proxy")
	}

	return config.ValidateConfig(cfg)
}

// bindCredentialFlags applies credential flags over the environment.
func bindCredentialFlags(flags *pflag.FlagSet, cfg *config.Config) {
	if flag := flags.Lookup("account"); flag != nil && flag.Changed {
		cfg.Secrets.AccountName, _ = flags.GetString("account")
	}

	if flag := flags.Lookup("password"); flag != nil && flag.Changed {
		cfg.Secrets.Password, _ = flags.GetString("password")
	}

	if flag := flags.Lookup("shared-secret"); flag != nil && flag.Changed {
		cfg.Secrets.SharedSecret, _ = flags.GetString("shared-secret")
	}

	if flag := flags.Lookup("code"); flag != nil && flag.Changed {
		cfg.Secrets.TwoFactorCode, _ = flags.GetString("code")
	}
}

// addCredentialFlags registers the flags used to log in.
func addCredentialFlags(flags *pflag.FlagSet) {
	flags.StringP("account", "a", "", "Steam account name.")
	flags.String("password", "", "account password (prefer STEAM_PASSWORD).")
	flags.StringP("shared-secret", "s", "", "mobile authenticator shared secret, hex or base64.")
	flags.String("code", "", "Steam Guard code typed by hand.")
}

// outputFormatFlag reads and parses the --output flag.
func outputFormatFlag(flags *pflag.FlagSet) (app.OutputFormat, error) {
	value, _ := flags.GetString("output")

	return app.ParseOutputFormat(value)
}
