package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/steam-session/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// AccountName is the Steam account to log in with.
	AccountName string `mapstructure:"account_name"`
	// SharedSecret is the mobile authenticator shared secret (hex or base64).
	SharedSecret string `mapstructure:"shared_secret"`
	// Proxy is an optional HTTP proxy in the form user:password@host:port.
	Proxy string `mapstructure:"proxy"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout bounds every HTTP request (e.g., "60s").
	RequestTimeout string `mapstructure:"request_timeout"`
	// MaxLogLength caps debug dumps of requests and responses (e.g., "1MB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// UserAgent overrides the default browser User-Agent.
	UserAgent string `mapstructure:"user_agent"`
	// CommunityBaseURL is the Steam Community base URL.
	CommunityBaseURL string `mapstructure:"community_base_url"`
	// ProxyClientCacheSize is the number of per-proxy HTTP clients kept alive.
	ProxyClientCacheSize int `mapstructure:"proxy_client_cache_size"`
	// PriceHistoryCacheSize is the number of price histories kept in memory.
	PriceHistoryCacheSize int `mapstructure:"price_history_cache_size"`
	// PriceHistoryCacheTTL is how long a cached price history stays fresh.
	PriceHistoryCacheTTL string `mapstructure:"price_history_cache_ttl"`
	// Secrets holds credentials read from the environment.
	Secrets Secrets `mapstructure:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedMaxLogLength is the parsed debug dump limit in bytes.
	ParsedMaxLogLength uint64
	// ParsedPriceHistoryCacheTTL is the parsed price history cache TTL.
	ParsedPriceHistoryCacheTTL time.Duration
}

// Secrets holds credentials that should not live in the configuration file.
type Secrets struct {
	// AccountName overrides the configured account name.
	AccountName string `env:"STEAM_ACCOUNT_NAME"`
	// Password is the account password.
	Password string `env:"STEAM_PASSWORD"`
	// SharedSecret overrides the configured shared secret.
	SharedSecret string `env:"STEAM_SHARED_SECRET"`
	// TwoFactorCode is a one-time code typed by the user.
	TwoFactorCode string `env:"STEAM_TWO_FACTOR_CODE"`
}

const (
	// DefaultCommunityBaseURL is the base URL of Steam Community.
	DefaultCommunityBaseURL = "https://steamcommunity.com"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".steam-session.yaml"

	// DefaultMaxLogLength is the default maximum size (in bytes) for debug dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultRequestTimeout is the default request timeout.
	DefaultRequestTimeout = "60s"

	// DefaultProxyClientCacheSize is the default number of cached per-proxy clients.
	DefaultProxyClientCacheSize = 16

	// DefaultPriceHistoryCacheSize is the default number of cached price histories.
	DefaultPriceHistoryCacheSize = 256

	// DefaultPriceHistoryCacheTTL is the default price history cache TTL.
	DefaultPriceHistoryCacheTTL = "5m"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is not positive.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidBaseURL indicates that the community base URL is not an absolute HTTP(S) URL.
	ErrInvalidBaseURL = errors.New("community_base_url must be an absolute http(s) URL")
	// ErrInvalidProxy indicates that the proxy cannot be parsed.
	ErrInvalidProxy = errors.New("proxy must look like user:password@host:port")
	// ErrInvalidCacheSize indicates that a cache size is not positive.
	ErrInvalidCacheSize = errors.New("cache size must be a positive integer")
	// ErrInvalidCacheTTL indicates that the cache TTL is not positive.
	ErrInvalidCacheTTL = errors.New("price_history_cache_ttl must be positive")
)

// LoadConfig loads configuration settings from a YAML file.
// An explicitly named file must exist; the default file is optional.
func LoadConfig(configFilename string) (*Config, error) {
	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if isExplicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	secrets, err := LoadSecrets()
	if err != nil {
		return nil, err
	}

	cfg.Secrets = secrets

	return &cfg, nil
}

// LoadSecrets reads credentials from environment variables.
func LoadSecrets() (Secrets, error) {
	var secrets Secrets
	if err := env.Parse(&secrets); err != nil {
		return Secrets{}, fmt.Errorf("failed to parse secrets from environment: %w", err)
	}

	return secrets, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var err error

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("failed to parse request timeout: %w", err)
	}

	if cfg.ParsedRequestTimeout <= 0 {
		return ErrInvalidRequestTimeout
	}

	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)
	cfg.ParsedMaxLogLength = DefaultMaxLogLength

	if maxLogLength != "" && maxLogLength != "0" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	if err = validateBaseURL(cfg.CommunityBaseURL); err != nil {
		return err
	}

	cfg.CommunityBaseURL = strings.TrimRight(cfg.CommunityBaseURL, "/")

	if _, err = ParseProxy(cfg.Proxy); err != nil {
		return err
	}

	if cfg.ProxyClientCacheSize <= 0 || cfg.PriceHistoryCacheSize <= 0 {
		return ErrInvalidCacheSize
	}

	cfg.ParsedPriceHistoryCacheTTL, err = time.ParseDuration(cfg.PriceHistoryCacheTTL)
	if err != nil {
		return fmt.Errorf("failed to parse price history cache TTL: %w", err)
	}

	if cfg.ParsedPriceHistoryCacheTTL <= 0 {
		return ErrInvalidCacheTTL
	}

	return nil
}

// ParseProxy converts a user:password@host:port proxy into a URL.
// An empty proxy yields a nil URL. The http scheme is implied when missing.
func ParseProxy(proxy string) (*url.URL, error) {
	proxy = strings.TrimSpace(proxy)
	if proxy == "" {
		return nil, nil //nolint:nilnil // No proxy configured.
	}

	if !strings.Contains(proxy, "://") {
		proxy = "http://" + proxy
	}

	parsed, err := url.Parse(proxy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProxy, err)
	}

	if parsed.Host == "" || parsed.Port() == "" {
		return nil, fmt.Errorf("%w: '%s'", ErrInvalidProxy, proxy)
	}

	return parsed, nil
}

// ResolvedAccountName returns the account name, preferring the environment.
func (c *Config) ResolvedAccountName() string {
	return firstNonEmpty(c.Secrets.AccountName, c.AccountName)
}

// ResolvedSharedSecret returns the shared secret, preferring the environment.
func (c *Config) ResolvedSharedSecret() string {
	return firstNonEmpty(c.Secrets.SharedSecret, c.SharedSecret)
}

func validateBaseURL(baseURL string) error {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	if (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, baseURL)
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("request_timeout", DefaultRequestTimeout)
	v.SetDefault("max_log_length", "1MB")
	v.SetDefault("community_base_url", DefaultCommunityBaseURL)
	v.SetDefault("proxy_client_cache_size", DefaultProxyClientCacheSize)
	v.SetDefault("price_history_cache_size", DefaultPriceHistoryCacheSize)
	v.SetDefault("price_history_cache_ttl", DefaultPriceHistoryCacheTTL)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}

	return ""
}
