package http

import (
	"net/http"

	"github.com/oshokin/steam-session/internal/utils"
)

// UserAgentInjector is an http.RoundTripper that adds a browser User-Agent to outgoing requests.
// Steam rejects login attempts from clients that do not look like a browser.
type UserAgentInjector struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// userAgentProvider provides the User-Agent string to inject.
	userAgentProvider utils.UserAgentProvider
}

const (
	// userAgentHeader is the HTTP header name for User-Agent.
	userAgentHeader = "User-Agent"
	// acceptLanguageHeader pins the language of server messages, which the login flow matches on.
	acceptLanguageHeader = "Accept-Language"
	// defaultAcceptLanguage is the language requested when the caller sets none.
	defaultAcceptLanguage = "en-US,en;q=0.9"
)

// NewUserAgentInjector creates and returns a new instance of UserAgentInjector.
func NewUserAgentInjector(next http.RoundTripper, userAgentProvider utils.UserAgentProvider) http.RoundTripper {
	return &UserAgentInjector{
		next:              next,
		userAgentProvider: userAgentProvider,
	}
}

// RoundTrip injects the User-Agent and Accept-Language headers when they are missing.
func (t *UserAgentInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get(userAgentHeader) != "" && req.Header.Get(acceptLanguageHeader) != "" {
		return t.next.RoundTrip(req)
	}

	// A RoundTripper must not modify the caller's request.
	req = req.Clone(req.Context())

	if req.Header.Get(userAgentHeader) == "" {
		req.Header.Set(userAgentHeader, t.userAgentProvider.GetUserAgent())
	}

	if req.Header.Get(acceptLanguageHeader) == "" {
		req.Header.Set(acceptLanguageHeader, defaultAcceptLanguage)
	}

	return t.next.RoundTrip(req)
}
