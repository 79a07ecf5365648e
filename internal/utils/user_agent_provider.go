package utils

import "strings"

//go:generate $MOCKGEN -source=user_agent_provider.go -destination=mocks/user_agent_provider_mock.go

// UserAgentProvider supplies the User-Agent sent with every Steam request.
type UserAgentProvider interface {
	// GetUserAgent returns a User-Agent string.
	GetUserAgent() string
}

// SimpleUserAgentProvider returns a fixed User-Agent string.
type SimpleUserAgentProvider struct {
	// userAgent is the User-Agent string to return.
	userAgent string
}

// NewSimpleUserAgentProvider creates a provider that always returns userAgent.
func NewSimpleUserAgentProvider(userAgent string) UserAgentProvider {
	return &SimpleUserAgentProvider{userAgent: userAgent}
}

// NewUserAgentProvider returns a provider for the configured User-Agent,
// falling back to the given default when the configured one is blank.
func NewUserAgentProvider(configured, fallback string) UserAgentProvider {
	if strings.TrimSpace(configured) == "" {
		return NewSimpleUserAgentProvider(fallback)
	}

	return NewSimpleUserAgentProvider(strings.TrimSpace(configured))
}

// GetUserAgent returns a User-Agent string.
func (p *SimpleUserAgentProvider) GetUserAgent() string {
	return p.userAgent
}
