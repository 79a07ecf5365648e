package session

import (
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/oshokin/steam-session/internal/utils"
)

// Store is an in-memory cookie map keyed by cookie name.
// It is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	cookies map[string]Cookie
	now     func() time.Time
}

// NewStore creates an empty store.
func NewStore(cookies ...Cookie) *Store {
	s := &Store{now: time.Now}
	s.Replace(cookies...)

	return s
}

// Get returns a copy of the current cookie mapping.
func (s *Store) Get() map[string]Cookie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return maps.Clone(s.cookies)
}

// List returns the cookies ordered by name.
func (s *Store) List() []Cookie {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := slices.Sorted(maps.Keys(s.cookies))
	result := make([]Cookie, 0, len(names))

	for _, name := range names {
		result = append(result, s.cookies[name])
	}

	return result
}

// Lookup returns the cookie with the given name.
func (s *Store) Lookup(name string) (Cookie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cookie, ok := s.cookies[name]

	return cookie, ok
}

// Len returns the number of cookies held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.cookies)
}

// Merge adds cookies, overwriting entries with the same name.
// Cookies without a name are ignored. An expired cookie deletes its entry,
// which is how servers clear cookies.
// It returns the number of distinct names set or deleted.
func (s *Store) Merge(cookies ...Cookie) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.mergeLocked(cookies)
}

// Replace discards the current cookies and stores the given ones.
func (s *Store) Replace(cookies ...Cookie) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cookies = make(map[string]Cookie, len(cookies))
	s.mergeLocked(cookies)
}

func (s *Store) mergeLocked(cookies []Cookie) int {
	now := s.now()
	touched := make(map[string]struct{}, len(cookies))

	for _, cookie := range cookies {
		if cookie.Name == "" {
			continue
		}

		touched[cookie.Name] = struct{}{}

		if cookie.Expired(now) {
			delete(s.cookies, cookie.Name)

			continue
		}

		s.cookies[cookie.Name] = cookie
	}

	return len(touched)
}

// Clear removes every cookie.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.cookies)
}

// HasSession reports whether a sessionid cookie is present.
func (s *Store) HasSession() bool {
	_, ok := s.Lookup(CookieSessionID)

	return ok
}

// SessionID returns the sessionid cookie value, or an empty string.
func (s *Store) SessionID() string {
	cookie, _ := s.Lookup(CookieSessionID)

	return cookie.Value
}

// Header packs the cookies into a Cookie request header value.
func (s *Store) Header() string {
	return strings.Join(utils.Map(s.List(), Cookie.String), "; ")
}

// AbsorbSetCookie parses Set-Cookie header values and merges them.
// Unparseable values are skipped. It returns the number of distinct cookie
// names set or deleted, so repeated identical headers count once.
func (s *Store) AbsorbSetCookie(headers []string) int {
	now := s.now()
	parsed := make([]Cookie, 0, len(headers))

	for _, header := range headers {
		if cookie, ok := ParseSetCookie(header, now); ok {
			parsed = append(parsed, cookie)
		}
	}

	return s.Merge(parsed...)
}
