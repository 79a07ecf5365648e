package session

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// CookieSessionID is the anti-CSRF session cookie set after login.
	CookieSessionID = "sessionid"
	// CookieSteamLoginSecure carries the secure login token.
	CookieSteamLoginSecure = "steamLoginSecure"
	// CookieMachineAuthPrefix prefixes the per-account machine auth cookie.
	CookieMachineAuthPrefix = "steamMachineAuth"
)

//nolint:gochecknoglobals // Layouts seen in Set-Cookie Expires attributes.
var expiresLayouts = []string{
	http.TimeFormat,
	time.RFC1123,
	"Mon, 02-Jan-2006 15:04:05 MST",
	"Mon, 02 Jan 2006 15:04:05 -0700",
	time.RFC850,
	time.ANSIC,
}

// Cookie is a named cookie value with an optional expiration.
type Cookie struct {
	// Name is the cookie name and the store key.
	Name string `json:"name" yaml:"name"`
	// Value is the raw cookie value.
	Value string `json:"value" yaml:"value"`
	// Expires is the expiration instant, nil for session cookies.
	Expires *time.Time `json:"expires,omitempty" yaml:"expires,omitempty"`
}

// NewCookie returns a session cookie without expiration.
func NewCookie(name, value string) Cookie {
	return Cookie{Name: name, Value: value}
}

// MachineAuthCookieName returns the machine auth cookie name for a Steam ID.
func MachineAuthCookieName(steamID string) string {
	return CookieMachineAuthPrefix + steamID
}

// String renders the cookie as a Cookie header pair.
func (c Cookie) String() string {
	return c.Name + "=" + c.Value
}

// Expired reports whether the cookie has an expiration at or before now.
func (c Cookie) Expired(now time.Time) bool {
	return c.Expires != nil && !c.Expires.After(now)
}

// ParseSetCookie parses a Set-Cookie header value.
// Strictly valid headers are parsed by net/http; anything else falls back to a
// permissive split so that a formatting quirk never fails a response.
// It returns false only when no cookie name can be recovered.
func ParseSetCookie(header string, now time.Time) (Cookie, bool) {
	if parsed, err := http.ParseSetCookie(header); err == nil && parsed.Name != "" {
		cookie := Cookie{Name: parsed.Name, Value: parsed.Value}

		switch {
		case parsed.MaxAge < 0:
			expires := time.Unix(0, 0).UTC()
			cookie.Expires = &expires
		case parsed.MaxAge > 0:
			expires := now.Add(time.Duration(parsed.MaxAge) * time.Second).UTC()
			cookie.Expires = &expires
		case !parsed.Expires.IsZero():
			expires := parsed.Expires.UTC()
			cookie.Expires = &expires
		}

		return cookie, true
	}

	return parsePermissive(header, now)
}

func parsePermissive(header string, now time.Time) (Cookie, bool) {
	parts := strings.Split(header, ";")

	name, value, _ := strings.Cut(strings.TrimSpace(parts[0]), "=")

	name = strings.TrimSpace(name)
	if name == "" {
		return Cookie{}, false
	}

	cookie := Cookie{
		Name:  name,
		Value: strings.Trim(strings.TrimSpace(value), `"`),
	}

	for _, attribute := range parts[1:] {
		key, attributeValue, _ := strings.Cut(strings.TrimSpace(attribute), "=")
		attributeValue = strings.TrimSpace(attributeValue)

		switch strings.ToLower(strings.TrimSpace(key)) {
		case "max-age":
			if seconds, err := strconv.Atoi(attributeValue); err == nil {
				expires := now.Add(time.Duration(seconds) * time.Second).UTC()
				cookie.Expires = &expires

				// Max-Age takes precedence over Expires.
				return cookie, true
			}
		case "expires":
			if expires, ok := parseExpires(attributeValue); ok {
				cookie.Expires = &expires
			}
		}
	}

	return cookie, true
}

func parseExpires(value string) (time.Time, bool) {
	for _, layout := range expiresLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed.UTC(), true
		}
	}

	return time.Time{}, false
}
