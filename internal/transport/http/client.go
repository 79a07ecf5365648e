package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/oshokin/steam-session/internal/config"
	"github.com/oshokin/steam-session/internal/session"
	"github.com/oshokin/steam-session/internal/utils"
)

//go:generate $MOCKGEN -source=client.go -destination=mocks/requester_mock.go

// Requester performs HTTP requests on behalf of the Steam client.
type Requester interface {
	// Do performs the request and returns the fully read response.
	Do(ctx context.Context, request *Request) (*Response, error)
}

// Request describes a single HTTP request.
type Request struct {
	// Method is the HTTP method. It defaults to POST when Form is set and GET otherwise.
	Method string
	// URL is the absolute request URL.
	URL string
	// Header holds extra request headers such as Referer.
	Header http.Header
	// Form is sent as an application/x-www-form-urlencoded body when not nil.
	Form url.Values
	// FollowRedirects makes the client follow 3xx responses.
	FollowRedirects bool
	// Proxy overrides the configured proxy for this request (user:password@host:port).
	Proxy string
	// SkipCookies sends the request without session cookies.
	SkipCookies bool
	// DiscardSetCookies leaves the session untouched by cookies the response sets.
	DiscardSetCookies bool
}

// Response is a fully read HTTP response.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Body is the response body.
	Body []byte
}

// ClientConfig holds the settings of Client.
type ClientConfig struct {
	// Proxy is the default proxy (user:password@host:port), empty for a direct connection.
	Proxy string
	// Timeout bounds each request including redirects.
	Timeout time.Duration
	// MaxLogLength caps debug dumps.
	MaxLogLength uint64
	// ClientCacheSize is the number of per-proxy HTTP clients kept alive.
	ClientCacheSize int
	// MaxResponseBodySize caps how many body bytes are read, 16 MiB when zero.
	MaxResponseBodySize int64
	// UserAgentProvider supplies the User-Agent header.
	UserAgentProvider utils.UserAgentProvider
}

// Client is the Requester implementation used against Steam Community.
type Client struct {
	cfg     ClientConfig
	store   *session.Store
	clients *lru.Cache[string, *http.Client]
	// baseTransport builds the innermost transport for a proxy URL (nil means direct).
	baseTransport func(proxy *url.URL) http.RoundTripper
}

// Static error definitions for better error handling.
var (
	// ErrInvalidRequest indicates that the request cannot be built.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrRequestFailed indicates a network failure or timeout.
	ErrRequestFailed = errors.New("request failed")
	// ErrTooManyRedirects indicates that a redirect chain exceeded the limit.
	ErrTooManyRedirects = errors.New("too many redirects")
	// ErrInvalidJSON indicates that a response body is not valid JSON.
	ErrInvalidJSON = errors.New("response is not in JSON format")
	// ErrResponseTooLarge indicates that a response body exceeded the size limit.
	ErrResponseTooLarge = errors.New("response body too large")
)

// NewClient creates a Client that keeps its cookies in store.
func NewClient(cfg ClientConfig, store *session.Store) (*Client, error) {
	if _, err := config.ParseProxy(cfg.Proxy); err != nil {
		return nil, err
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	if cfg.ClientCacheSize <= 0 {
		cfg.ClientCacheSize = config.DefaultProxyClientCacheSize
	}

	if cfg.MaxResponseBodySize <= 0 {
		cfg.MaxResponseBodySize = maxResponseBodySize
	}

	if cfg.UserAgentProvider == nil {
		cfg.UserAgentProvider = utils.NewSimpleUserAgentProvider(DefaultUserAgent)
	}

	clients, err := lru.NewWithEvict(cfg.ClientCacheSize, func(_ string, client *http.Client) {
		client.CloseIdleConnections()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client cache: %w", err)
	}

	return &Client{
		cfg:           cfg,
		store:         store,
		clients:       clients,
		baseTransport: newBaseTransport,
	}, nil
}

// NewClientFromConfig creates a Client from the validated application config.
func NewClientFromConfig(cfg *config.Config, store *session.Store) (*Client, error) {
	return NewClient(ClientConfig{
		Proxy:             cfg.Proxy,
		Timeout:           cfg.ParsedRequestTimeout,
		MaxLogLength:      cfg.ParsedMaxLogLength,
		ClientCacheSize:   cfg.ProxyClientCacheSize,
		UserAgentProvider: utils.NewUserAgentProvider(cfg.UserAgent, DefaultUserAgent),
	}, store)
}

// Do performs the request and returns the fully read response.
// Non-2xx statuses are not errors at this layer.
func (c *Client) Do(ctx context.Context, request *Request) (*Response, error) {
	if request == nil {
		return nil, ErrNilRequest
	}

	httpClient, err := c.clientFor(request.Proxy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	httpRequest, err := c.buildRequest(ctx, request)
	if err != nil {
		return nil, err
	}

	resp, err := httpClient.Do(httpRequest)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	defer resp.Body.Close() //nolint:errcheck // Body is fully read below.

	// One byte past the limit tells a body of exactly the limit from a longer one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxResponseBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrRequestFailed, err)
	}

	if int64(len(body)) > c.cfg.MaxResponseBodySize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes",
			ErrResponseTooLarge, httpRequest.URL.Path, c.cfg.MaxResponseBodySize)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// CloseIdleConnections drops every cached HTTP client.
func (c *Client) CloseIdleConnections() {
	c.clients.Purge()
}

// DecodeJSON unmarshals the response body into v.
func (r *Response) DecodeJSON(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

func (c *Client) buildRequest(ctx context.Context, request *Request) (*http.Request, error) {
	method := request.Method
	if method == "" {
		method = http.MethodGet
		if request.Form != nil {
			method = http.MethodPost
		}
	}

	var body io.Reader = http.NoBody
	if request.Form != nil {
		body = strings.NewReader(request.Form.Encode())
	}

	ctx = withRequestOptions(ctx, requestOptions{
		followRedirects:   request.FollowRedirects,
		skipCookies:       request.SkipCookies,
		discardSetCookies: request.DiscardSetCookies,
	})

	httpRequest, err := http.NewRequestWithContext(ctx, method, request.URL, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	for name, values := range request.Header {
		for _, value := range values {
			httpRequest.Header.Add(name, value)
		}
	}

	if request.Form != nil && httpRequest.Header.Get("Content-Type") == "" {
		httpRequest.Header.Set("Content-Type", contentTypeForm)
	}

	return httpRequest, nil
}

// clientFor returns the cached HTTP client for a proxy, creating it on demand.
func (c *Client) clientFor(proxy string) (*http.Client, error) {
	if strings.TrimSpace(proxy) == "" {
		proxy = c.cfg.Proxy
	}

	proxyURL, err := config.ParseProxy(proxy)
	if err != nil {
		return nil, err
	}

	key := ""
	if proxyURL != nil {
		key = proxyURL.String()
	}

	if client, ok := c.clients.Get(key); ok {
		return client, nil
	}

	transport := c.baseTransport(proxyURL)
	transport = NewLogTransport(transport, c.cfg.MaxLogLength)
	transport = NewSessionTransport(transport, c.store)
	transport = NewUserAgentInjector(transport, c.cfg.UserAgentProvider)

	client := &http.Client{
		Transport:     transport,
		Timeout:       c.cfg.Timeout,
		CheckRedirect: checkRedirect,
	}

	c.clients.Add(key, client)

	return client, nil
}

func checkRedirect(req *http.Request, via []*http.Request) error {
	if !optionsFromContext(req.Context()).followRedirects {
		return http.ErrUseLastResponse
	}

	if len(via) >= maxRedirects {
		return ErrTooManyRedirects
	}

	return nil
}

func newBaseTransport(proxy *url.URL) http.RoundTripper {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // Always *http.Transport.
	if proxy != nil {
		transport.Proxy = http.ProxyURL(proxy)
	}

	return transport
}
