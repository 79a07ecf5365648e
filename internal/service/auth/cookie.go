package auth

import (
	"fmt"

	"github.com/oshokin/steam-session/internal/client/steam"
	"github.com/oshokin/steam-session/internal/session"
	"github.com/oshokin/steam-session/internal/utils"
)

// sessionIDBytes is the number of random bytes in a synthesized sessionid.
const sessionIDBytes = 12

// sessionCookies builds the cookies of a freshly established session.
func sessionCookies(params *steam.TransferParameters) ([]session.Cookie, error) {
	if params == nil || params.SteamID == "" || params.TokenSecure == "" || params.WebCookie == "" {
		return nil, fmt.Errorf("%w: login succeeded without transfer parameters", ErrMalformedServerResponse)
	}

	sessionID, err := utils.RandomHex(sessionIDBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	return []session.Cookie{
		session.NewCookie(session.CookieSessionID, sessionID),
		session.NewCookie(session.CookieSteamLoginSecure, params.TokenSecure),
		session.NewCookie(session.MachineAuthCookieName(params.SteamID), params.WebCookie),
	}, nil
}
