package http

import (
	"net/http"

	"github.com/oshokin/steam-session/internal/logger"
	"github.com/oshokin/steam-session/internal/session"
)

// SessionTransport is an http.RoundTripper that attaches the session cookies
// to each request and merges cookies set by each response back into the store.
type SessionTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// store holds the cookies of the current session.
	store *session.Store
}

// cookieHeader is the HTTP header name for request cookies.
const cookieHeader = "Cookie"

// NewSessionTransport creates a new SessionTransport backed by store.
func NewSessionTransport(next http.RoundTripper, store *session.Store) http.RoundTripper {
	return &SessionTransport{
		next:  next,
		store: store,
	}
}

// RoundTrip executes a single HTTP transaction with session cookies.
// Redirect hops pass through here too, so cookies set mid-chain are kept.
func (t *SessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	ctx := req.Context()
	options := optionsFromContext(ctx)

	if !options.skipCookies {
		if header := t.store.Header(); header != "" {
			req = req.Clone(ctx)

			if existing := req.Header.Get(cookieHeader); existing != "" {
				header = existing + "; " + header
			}

			req.Header.Set(cookieHeader, header)
		}
	}

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if options.discardSetCookies {
		return resp, nil
	}

	if merged := t.store.AbsorbSetCookie(resp.Header.Values("Set-Cookie")); merged > 0 {
		logger.Debugf(ctx, "Absorbed %d cookies from %s, session holds %d", merged, req.URL.Path, t.store.Len())
	}

	return resp, nil
}
