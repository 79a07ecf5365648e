package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/oshokin/steam-session/internal/config"
	"github.com/oshokin/steam-session/internal/logger"
	"github.com/oshokin/steam-session/internal/totp"
)

// ExecuteCodeCommand prints the current mobile authenticator code.
func ExecuteCodeCommand(ctx context.Context, cfg *config.Config, out io.Writer) error {
	if err := runCode(cfg.ResolvedSharedSecret(), out, time.Now()); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	logger.Debug(ctx, "Steam Guard code generated")

	return nil
}

func runCode(sharedSecret string, out io.Writer, now time.Time) error {
	code, err := totp.GenerateCode(sharedSecret, now)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "%s (valid for %ds)\n", code, totp.SecondsRemaining(now))

	return err
}
