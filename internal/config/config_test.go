package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// validConfig returns a configuration that passes validation.
func validConfig() *Config {
	return &Config{
		AccountName:           "gaben",
		LogLevel:              "info",
		RequestTimeout:        "30s",
		MaxLogLength:          "512KB",
		CommunityBaseURL:      "https://steamcommunity.com/",
		ProxyClientCacheSize:  4,
		PriceHistoryCacheSize: 8,
		PriceHistoryCacheTTL:  "1m",
	}
}

// TestConstants tests the constants.
func TestConstants(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1024*1024, DefaultMaxLogLength)
	assert.Equal(t, "https://steamcommunity.com", DefaultCommunityBaseURL)
	assert.Equal(t, ".steam-session.yaml", DefaultConfigFilename)
}

// TestLoadConfig tests the LoadConfig function.
func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name          string
		configContent string
		createFile    bool
		expectError   bool
		expectedError string
		check         func(*testing.T, *Config)
	}{
		{
			name:       "valid config file",
			createFile: true,
			configContent: `
account_name: "gaben"
shared_secret: "AQIDBAUGBwgJCgsMDQ4PEBESExQ="
proxy: "user:pass@127.0.0.1:8080"
log_level: "debug"
request_timeout: "15s"
max_log_length: "64KB"
`,
			check: func(t *testing.T, cfg *Config) {
				t.Helper()
				assert.Equal(t, "gaben", cfg.AccountName)
				assert.Equal(t, "AQIDBAUGBwgJCgsMDQ4PEBESExQ=", cfg.SharedSecret)
				assert.Equal(t, "user:pass@127.0.0.1:8080", cfg.Proxy)
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "15s", cfg.RequestTimeout)
				assert.Equal(t, "64KB", cfg.MaxLogLength)
				// Defaults fill in what the file omits.
				assert.Equal(t, DefaultCommunityBaseURL, cfg.CommunityBaseURL)
				assert.Equal(t, DefaultPriceHistoryCacheSize, cfg.PriceHistoryCacheSize)
			},
		},
		{
			name:          "non-existent explicit file",
			createFile:    false,
			expectError:   true,
			expectedError: "failed to read config from file",
		},
		{
			name:          "invalid yaml",
			createFile:    true,
			configContent: "account_name: [unterminated",
			expectError:   true,
			expectedError: "failed to read config from file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath := filepath.Join(t.TempDir(), "config.yaml")

			if tt.createFile {
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0o600))
			}

			cfg, err := LoadConfig(configPath)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)

				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

// TestLoadConfig_DefaultFileIsOptional tests that a missing default file yields defaults.
func TestLoadConfig_DefaultFileIsOptional(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
	assert.Equal(t, DefaultCommunityBaseURL, cfg.CommunityBaseURL)
	require.NoError(t, ValidateConfig(cfg))
}

// TestLoadSecrets tests reading credentials from the environment.
func TestLoadSecrets(t *testing.T) {
	t.Setenv("STEAM_ACCOUNT_NAME", "env-account")
	t.Setenv("STEAM_PASSWORD", "hunter2")
	t.Setenv("STEAM_SHARED_SECRET", "env-secret")
	t.Setenv("STEAM_TWO_FACTOR_CODE", "ABCDE")

	secrets, err := LoadSecrets()
	require.NoError(t, err)

	assert.Equal(t, "env-account", secrets.AccountName)
	assert.Equal(t, "hunter2", secrets.Password)
	assert.Equal(t, "env-secret", secrets.SharedSecret)
	assert.Equal(t, "ABCDE", secrets.TwoFactorCode)

	cfg := &Config{AccountName: "file-account", SharedSecret: "file-secret", Secrets: secrets}
	assert.Equal(t, "env-account", cfg.ResolvedAccountName())
	assert.Equal(t, "env-secret", cfg.ResolvedSharedSecret())
}

// TestResolved_FallsBackToFile tests that file values are used without environment overrides.
func TestResolved_FallsBackToFile(t *testing.T) {
	t.Parallel()

	cfg := &Config{AccountName: "file-account", SharedSecret: "file-secret"}

	assert.Equal(t, "file-account", cfg.ResolvedAccountName())
	assert.Equal(t, "file-secret", cfg.ResolvedSharedSecret())
}

// TestValidateConfig tests the ValidateConfig function.
func TestValidateConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectedErr error
		errContains string
	}{
		{
			name:   "valid config",
			mutate: func(_ *Config) {},
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.LogLevel = "verbose" },
			expectedErr: ErrUnknownLogLevel,
		},
		{
			name:        "unparseable timeout",
			mutate:      func(c *Config) { c.RequestTimeout = "soon" },
			errContains: "failed to parse request timeout",
		},
		{
			name:        "negative timeout",
			mutate:      func(c *Config) { c.RequestTimeout = "-1s" },
			expectedErr: ErrInvalidRequestTimeout,
		},
		{
			name:        "bad max log length",
			mutate:      func(c *Config) { c.MaxLogLength = "lots" },
			errContains: "failed to parse max log length",
		},
		{
			name:        "relative base URL",
			mutate:      func(c *Config) { c.CommunityBaseURL = "steamcommunity.com" },
			expectedErr: ErrInvalidBaseURL,
		},
		{
			name:        "proxy without port",
			mutate:      func(c *Config) { c.Proxy = "user:pass@127.0.0.1" },
			expectedErr: ErrInvalidProxy,
		},
		{
			name:        "zero cache size",
			mutate:      func(c *Config) { c.PriceHistoryCacheSize = 0 },
			expectedErr: ErrInvalidCacheSize,
		},
		{
			name:        "zero cache ttl",
			mutate:      func(c *Config) { c.PriceHistoryCacheTTL = "0s" },
			expectedErr: ErrInvalidCacheTTL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)

			err := ValidateConfig(cfg)

			switch {
			case tt.expectedErr != nil:
				require.ErrorIs(t, err, tt.expectedErr)
			case tt.errContains != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			default:
				require.NoError(t, err)
			}
		})
	}
}

// TestValidateConfig_DerivedFields tests that parsed fields are populated.
func TestValidateConfig_DerivedFields(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.LogLevel = "debug"

	require.NoError(t, ValidateConfig(cfg))

	assert.Equal(t, zapcore.DebugLevel, cfg.ParsedLogLevel)
	assert.Equal(t, 30*time.Second, cfg.ParsedRequestTimeout)
	assert.Equal(t, uint64(512000), cfg.ParsedMaxLogLength)
	assert.Equal(t, time.Minute, cfg.ParsedPriceHistoryCacheTTL)
	assert.Equal(t, "https://steamcommunity.com", cfg.CommunityBaseURL)
}

// TestParseProxy tests proxy parsing.
func TestParseProxy(t *testing.T) {
	t.Parallel()

	empty, err := ParseProxy("")
	require.NoError(t, err)
	assert.Nil(t, empty)

	implied, err := ParseProxy("user:pass@10.0.0.1:3128")
	require.NoError(t, err)
	assert.Equal(t, "http", implied.Scheme)
	assert.Equal(t, "10.0.0.1:3128", implied.Host)
	assert.Equal(t, "user", implied.User.Username())

	explicit, err := ParseProxy("https://10.0.0.1:443")
	require.NoError(t, err)
	assert.Equal(t, "https", explicit.Scheme)
}
