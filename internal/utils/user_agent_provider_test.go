package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSimpleUserAgentProvider_GetUserAgent tests the GetUserAgent method.
func TestSimpleUserAgentProvider_GetUserAgent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		userAgent string
	}{
		{
			name:      "empty user agent",
			userAgent: "",
		},
		{
			name:      "browser user agent",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
		},
		{
			name:      "custom user agent",
			userAgent: "steam-session/0.1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := NewSimpleUserAgentProvider(tt.userAgent)
			assert.Implements(t, (*UserAgentProvider)(nil), provider)
			assert.Equal(t, tt.userAgent, provider.GetUserAgent())
		})
	}
}

// TestNewUserAgentProvider tests the fallback to the default User-Agent.
func TestNewUserAgentProvider(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		configured string
		expected   string
	}{
		{
			name:       "configured value wins",
			configured: "Custom/1.0",
			expected:   "Custom/1.0",
		},
		{
			name:       "configured value is trimmed",
			configured: "  Custom/2.0 ",
			expected:   "Custom/2.0",
		},
		{
			name:       "blank falls back",
			configured: "   ",
			expected:   "Default/1.0",
		},
		{
			name:       "empty falls back",
			configured: "",
			expected:   "Default/1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			provider := NewUserAgentProvider(tt.configured, "Default/1.0")
			assert.Equal(t, tt.expected, provider.GetUserAgent())
		})
	}
}
