package auth

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/oshokin/steam-session/internal/client/steam"
	"github.com/oshokin/steam-session/internal/session"
	http_transport "github.com/oshokin/steam-session/internal/transport/http"
)

// unknownRejectReason is reported when Steam refuses a login without a message.
const unknownRejectReason = "unknown error"

// humanityPattern matches the message Steam shows alongside a captcha.
var humanityPattern = regexp.MustCompile(`(?i)verify your humanity`)

// outcome is the interpretation of a login response.
type outcome struct {
	state   State
	cookies []session.Cookie
	err     error
}

// interpretLogin maps a login response to a terminal state.
func interpretLogin(response *steam.LoginResponse) outcome {
	if response == nil {
		return outcome{
			state: StateLoginSubmitted,
			err:   fmt.Errorf("%w: empty login response", ErrMalformedServerResponse),
		}
	}

	if !response.Success {
		return interpretFailure(response)
	}

	cookies, err := sessionCookies(response.TransferParameters)
	if err != nil {
		return outcome{state: StateLoginSubmitted, err: err}
	}

	return outcome{state: StateAuthenticated, cookies: cookies}
}

func interpretFailure(response *steam.LoginResponse) outcome {
	switch {
	case response.EmailAuthNeeded:
		return outcome{
			state: StateGuardRequired,
			err:   &GuardRequiredError{Kind: GuardEmail, EmailDomain: response.EmailDomain},
		}
	case response.RequiresTwoFactor:
		return outcome{
			state: StateGuardRequired,
			err:   &GuardRequiredError{Kind: GuardMobile},
		}
	case response.CaptchaNeeded || humanityPattern.MatchString(response.Message):
		return outcome{state: StateCaptchaRequired, err: ErrCaptchaRequired}
	}

	reason := strings.TrimSpace(response.Message)
	if reason == "" {
		reason = unknownRejectReason
	}

	return outcome{state: StateRejected, err: &RejectedError{Reason: reason}}
}

// classifySubmitError tells transport failures apart from unreadable responses.
func classifySubmitError(err error) *Error {
	if errors.Is(err, http_transport.ErrInvalidJSON) {
		return stageError(StageResponseParsing, fmt.Errorf("%w: %w", ErrMalformedServerResponse, err))
	}

	return stageError(StageLoginSubmission, fmt.Errorf("%w: %w", ErrTransport, err))
}
