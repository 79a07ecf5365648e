package steam

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oshokin/steam-session/internal/config"
	"github.com/oshokin/steam-session/internal/logger"
	http_transport "github.com/oshokin/steam-session/internal/transport/http"
)

// Client defines the interface for interacting with Steam Community.
type Client interface {
	// GetClientJSToken asks Steam who the current cookies belong to.
	GetClientJSToken(ctx context.Context) (*ClientJSToken, error)
	// GetRSAKey fetches the password encryption key of an account.
	GetRSAKey(ctx context.Context, accountName string) (*RSAKeyResponse, error)
	// DoLogin submits the login form.
	DoLogin(ctx context.Context, request *LoginRequest) (*LoginResponse, error)
	// CreateBuyOrder places a market buy order.
	CreateBuyOrder(ctx context.Context, request *BuyOrderRequest) (*BuyOrderResponse, error)
	// GetListingPage fetches the HTML of an item's market listing page.
	GetListingPage(ctx context.Context, appID int, marketHashName string, options ListingOptions) ([]byte, error)
}

// ClientImpl implements the Client interface for interacting with Steam Community.
type ClientImpl struct {
	// baseURL is the base URL for requests, without a trailing slash.
	baseURL string
	// requester performs the HTTP requests.
	requester http_transport.Requester
	// now returns the current time, used for cache-busting parameters.
	now func() time.Time
}

// NewClient creates and returns a new instance of ClientImpl.
func NewClient(cfg *config.Config, requester http_transport.Requester) (Client, error) {
	baseURL, err := url.Parse(cfg.CommunityBaseURL)
	if err != nil || baseURL.Host == "" {
		return nil, fmt.Errorf("%w: '%s'", config.ErrInvalidBaseURL, cfg.CommunityBaseURL)
	}

	return &ClientImpl{
		baseURL:   strings.TrimRight(baseURL.String(), "/"),
		requester: requester,
		now:       time.Now,
	}, nil
}

// GetClientJSToken asks Steam who the current cookies belong to.
// The check never changes the stored cookies.
func (c *ClientImpl) GetClientJSToken(ctx context.Context) (*ClientJSToken, error) {
	result, _, err := doJSON[ClientJSToken](c, ctx, &http_transport.Request{
		Method:            http.MethodGet,
		URL:               c.route(clientJSTokenURI),
		Header:            withReferer(c.route(marketURI)),
		DiscardSetCookies: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch client JS token: %w", err)
	}

	return result, nil
}

// GetRSAKey fetches the password encryption key of an account.
// A response with success=false is returned as is, with Raw set.
func (c *ClientImpl) GetRSAKey(ctx context.Context, accountName string) (*RSAKeyResponse, error) {
	form := url.Values{
		"username":   []string{accountName},
		"donotcache": []string{c.donotcache()},
	}

	result, raw, err := doJSON[RSAKeyResponse](c, ctx, &http_transport.Request{
		Method:            http.MethodPost,
		URL:               c.route(getRSAKeyURI),
		Header:            withReferer(c.route(loginRefererURI)),
		Form:              form,
		DiscardSetCookies: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch RSA key: %w", err)
	}

	result.Raw = raw

	return result, nil
}

// DoLogin submits the login form, following redirects.
func (c *ClientImpl) DoLogin(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: login request is nil", ErrInvalidArgument)
	}

	form := url.Values{
		"donotcache":        []string{c.donotcache()},
		"username":          []string{request.AccountName},
		"password":          []string{request.EncryptedPassword},
		"twofactorcode":     []string{request.TwoFactorCode},
		"emailauth":         []string{""},
		"loginfriendlyname": []string{""},
		"captchagid":        []string{captchaGIDNone},
		"captcha_text":      []string{""},
		"emailsteamid":      []string{""},
		"rsatimestamp":      []string{request.RSATimestamp},
		"remember_login":    []string{"true"},
		"tokentype":         []string{tokenTypeNone},
	}

	result, _, err := doJSON[LoginResponse](c, ctx, &http_transport.Request{
		Method:            http.MethodPost,
		URL:               c.route(doLoginURI),
		Header:            withReferer(c.route(loginRefererURI)),
		Form:              form,
		FollowRedirects:   true,
		DiscardSetCookies: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit login: %w", err)
	}

	return result, nil
}

// CreateBuyOrder places a market buy order.
// Cookies set by the response are kept in the session.
func (c *ClientImpl) CreateBuyOrder(ctx context.Context, request *BuyOrderRequest) (*BuyOrderResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("%w: buy order request is nil", ErrInvalidArgument)
	}

	form := url.Values{
		"sessionid":        []string{request.SessionID},
		"currency":         []string{formatInt(request.Currency)},
		"appid":            []string{formatInt(request.AppID)},
		"market_hash_name": []string{request.MarketHashName},
		"price_total":      []string{formatInt(request.PriceTotal)},
		"quantity":         []string{formatInt(request.Quantity)},
		"save_my_address":  []string{saveMyAddressNo},
	}

	result, _, err := doJSON[BuyOrderResponse](c, ctx, &http_transport.Request{
		Method: http.MethodPost,
		URL:    c.route(createBuyOrderURI),
		Header: withReferer(c.listingURL(request.AppID, request.MarketHashName)),
		Form:   form,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create buy order: %w", err)
	}

	logger.Debugf(ctx, "Buy order response for '%s': success=%d", request.MarketHashName, result.Success)

	return result, nil
}

// GetListingPage fetches the HTML of an item's market listing page.
// Session cookies are sent, and refreshed, only when options.WithLogin is set.
func (c *ClientImpl) GetListingPage(
	ctx context.Context,
	appID int,
	marketHashName string,
	options ListingOptions,
) ([]byte, error) {
	if strings.TrimSpace(marketHashName) == "" {
		return nil, fmt.Errorf("%w: market hash name is empty", ErrInvalidArgument)
	}

	response, err := c.do(ctx, &http_transport.Request{
		Method:            http.MethodGet,
		URL:               c.listingURL(appID, marketHashName),
		Proxy:             options.Proxy,
		SkipCookies:       !options.WithLogin,
		DiscardSetCookies: !options.WithLogin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing page: %w", err)
	}

	return response.Body, nil
}
