package steam

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	http_transport "github.com/oshokin/steam-session/internal/transport/http"
)

// doJSON performs the request and decodes a JSON body on 2xx responses.
//
//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func doJSON[T any](c *ClientImpl, ctx context.Context, request *http_transport.Request) (*T, []byte, error) {
	response, err := c.do(ctx, request)
	if err != nil {
		return nil, nil, err
	}

	var result T
	if err = response.DecodeJSON(&result); err != nil {
		return nil, response.Body, err
	}

	return &result, response.Body, nil
}

// do performs the request and rejects non-2xx responses.
func (c *ClientImpl) do(ctx context.Context, request *http_transport.Request) (*http_transport.Response, error) {
	response, err := c.requester.Do(ctx, request)
	if err != nil {
		return nil, err
	}

	if !response.IsSuccess() {
		return response, fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	return response, nil
}

// route builds an absolute URL for a URI path relative to the base URL.
func (c *ClientImpl) route(uri string) string {
	return c.baseURL + "/" + uri
}

// listingURL builds the market listing page URL of an item.
func (c *ClientImpl) listingURL(appID int, marketHashName string) string {
	return c.route(marketListingsURI) + "/" + strconv.Itoa(appID) + "/" + url.PathEscape(marketHashName)
}

func (c *ClientImpl) donotcache() string {
	return formatInt(c.now().UnixMilli())
}

func withReferer(referer string) http.Header {
	return http.Header{refererHeader: []string{referer}}
}

func formatInt[T int | int64](value T) string {
	return strconv.FormatInt(int64(value), 10)
}
