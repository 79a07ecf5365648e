package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/oshokin/steam-session/internal/config"
	"github.com/oshokin/steam-session/internal/logger"
	"github.com/oshokin/steam-session/internal/service/auth"
)

// ExecuteLoginCommand logs in and prints the session cookies.
func ExecuteLoginCommand(ctx context.Context, cfg *config.Config, format OutputFormat, out io.Writer) error {
	c, err := newComponents(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	defer c.close()

	return runLogin(ctx, c.auth, loginParams(cfg), format, out, time.Now())
}

func runLogin(
	ctx context.Context,
	authService auth.Service,
	params auth.Params,
	format OutputFormat,
	out io.Writer,
	now time.Time,
) error {
	logger.Infof(ctx, "Logging in as '%s'", params.AccountName)

	cookies, err := authService.Authenticate(ctx, params)
	if err != nil {
		return describeLoginError(err)
	}

	return writeCookies(out, format, cookies, now)
}

// describeLoginError adds a hint on what to do next to errors the user can act on.
func describeLoginError(err error) error {
	var guardErr *auth.GuardRequiredError

	switch {
	case errors.As(err, &guardErr) && guardErr.Kind == auth.GuardMobile:
		return fmt.Errorf("%w; pass --shared-secret or --code", err)
	case errors.As(err, &guardErr):
		return fmt.Errorf("%w; email Steam Guard is not supported, enable the mobile authenticator", err)
	case errors.Is(err, auth.ErrInvalidParameters):
		return fmt.Errorf("%w; set STEAM_PASSWORD and an account name, shared secret or code", err)
	case errors.Is(err, auth.ErrCaptchaRequired):
		return fmt.Errorf("%w; log in through a browser once, or retry later", err)
	}

	return err
}
