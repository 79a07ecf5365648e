package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStore_MergeOverwrites tests that merge replaces same-named cookies.
func TestStore_MergeOverwrites(t *testing.T) {
	t.Parallel()

	store := NewStore(NewCookie("steamCountry", "US"))
	store.Merge(NewCookie("steamCountry", "DE"), NewCookie(CookieSessionID, "abc"))

	cookies := store.Get()
	require.Len(t, cookies, 2)
	assert.Equal(t, "DE", cookies["steamCountry"].Value)
	assert.Equal(t, "abc", cookies[CookieSessionID].Value)
}

// TestStore_MergeIgnoresNamelessCookies tests that empty names are never stored.
func TestStore_MergeIgnoresNamelessCookies(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Merge(Cookie{Value: "orphan"})

	assert.Equal(t, 0, store.Len())
}

// TestStore_GetReturnsCopy tests that callers cannot mutate the store through Get.
func TestStore_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	store := NewStore(NewCookie("a", "1"))

	cookies := store.Get()
	cookies["b"] = NewCookie("b", "2")

	assert.Equal(t, 1, store.Len())
}

// TestStore_ReplaceAndClear tests the replace and clear operations.
func TestStore_ReplaceAndClear(t *testing.T) {
	t.Parallel()

	store := NewStore(NewCookie("a", "1"), NewCookie("b", "2"))

	store.Replace(NewCookie("c", "3"))

	_, hasA := store.Lookup("a")
	assert.False(t, hasA)

	c, hasC := store.Lookup("c")
	require.True(t, hasC)
	assert.Equal(t, "3", c.Value)

	store.Clear()
	assert.Equal(t, 0, store.Len())
	assert.False(t, store.HasSession())
}

// TestStore_HasSession tests logged-in detection through the sessionid cookie.
func TestStore_HasSession(t *testing.T) {
	t.Parallel()

	store := NewStore()
	assert.False(t, store.HasSession())
	assert.Empty(t, store.SessionID())

	store.Merge(NewCookie(CookieSessionID, "0123456789abcdef01234567"))
	assert.True(t, store.HasSession())
	assert.Equal(t, "0123456789abcdef01234567", store.SessionID())
}

// TestStore_Header tests Cookie header packing.
func TestStore_Header(t *testing.T) {
	t.Parallel()

	store := NewStore(
		NewCookie(CookieSteamLoginSecure, "token"),
		NewCookie(CookieSessionID, "sid"),
	)

	assert.Equal(t, "sessionid=sid; steamLoginSecure=token", store.Header())
	assert.Empty(t, NewStore().Header())
}

// TestStore_AbsorbSetCookieIdempotent tests that repeated identical headers yield one entry.
func TestStore_AbsorbSetCookieIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStore()
	header := "sessionid=abc; Path=/; Secure; SameSite=None"

	assert.Equal(t, 1, store.AbsorbSetCookie([]string{header}))
	assert.Equal(t, 1, store.AbsorbSetCookie([]string{header, header}))

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "abc", store.SessionID())
}

// TestStore_AbsorbSetCookieSkipsGarbage tests that malformed headers do not break absorption.
func TestStore_AbsorbSetCookieSkipsGarbage(t *testing.T) {
	t.Parallel()

	store := NewStore()

	merged := store.AbsorbSetCookie([]string{
		"",
		"=value-without-name",
		"steamCountry=US%7C0123; path=/",
		"flag",
	})

	assert.Equal(t, 2, merged)

	flag, ok := store.Lookup("flag")
	require.True(t, ok)
	assert.Empty(t, flag.Value)
}

// TestStore_AbsorbSetCookieCountsDistinctNames tests the merge count across repeated and distinct headers.
func TestStore_AbsorbSetCookieCountsDistinctNames(t *testing.T) {
	t.Parallel()

	store := NewStore()

	merged := store.AbsorbSetCookie([]string{
		"sessionid=a; Path=/",
		"sessionid=b; Path=/",
		"steamCountry=US; Path=/",
	})

	assert.Equal(t, 2, merged)
	assert.Equal(t, 2, store.Len())
	assert.Equal(t, "b", store.SessionID(), "the last header for a name wins")
}

// TestStore_DeletedCookiesAreDropped tests that servers can clear cookies with Max-Age or a past Expires.
func TestStore_DeletedCookiesAreDropped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{name: "max-age zero", header: "sessionid=; Max-Age=0; Path=/"},
		{name: "negative max-age", header: "sessionid=deleted; Max-Age=-1"},
		{name: "expires in the past", header: "sessionid=deleted; Expires=Thu, 01 Jan 1970 00:00:00 GMT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := NewStore(
				NewCookie(CookieSessionID, "0123456789abcdef01234567"),
				NewCookie(CookieSteamLoginSecure, "token"),
			)

			assert.Equal(t, 1, store.AbsorbSetCookie([]string{tt.header}))

			assert.False(t, store.HasSession())
			assert.Equal(t, "steamLoginSecure=token", store.Header())
		})
	}
}

// TestStore_MergeSkipsExpired tests that an already expired cookie never enters the store.
func TestStore_MergeSkipsExpired(t *testing.T) {
	t.Parallel()

	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)

	store := NewStore(
		Cookie{Name: "stale", Value: "1", Expires: &past},
		Cookie{Name: "fresh", Value: "2", Expires: &future},
	)

	_, hasStale := store.Lookup("stale")
	assert.False(t, hasStale)

	_, hasFresh := store.Lookup("fresh")
	assert.True(t, hasFresh)
}

// TestStore_ConcurrentMerge tests that concurrent writers never corrupt the map.
func TestStore_ConcurrentMerge(t *testing.T) {
	t.Parallel()

	store := NewStore()

	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)

		go func(value int) {
			defer wg.Done()

			store.Merge(NewCookie(CookieSessionID, string(rune('a'+value%26))))
			_ = store.Header()
		}(i)
	}

	wg.Wait()

	assert.Equal(t, 1, store.Len())
}

// TestCookie_Expired tests expiration checks.
func TestCookie_Expired(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, NewCookie("a", "1").Expired(now))
	assert.True(t, Cookie{Name: "a", Expires: &past}.Expired(now))
	assert.False(t, Cookie{Name: "a", Expires: &future}.Expired(now))
	assert.Equal(t, "steamMachineAuth76561197960287930", MachineAuthCookieName("76561197960287930"))
}
