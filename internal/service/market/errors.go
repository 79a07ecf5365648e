package market

import "errors"

// Static error definitions for better error handling.
var (
	// ErrNotLoggedIn indicates that the store holds no sessionid cookie.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrInvalidBuyOrder indicates a buy order that cannot be placed as given.
	ErrInvalidBuyOrder = errors.New("invalid buy order")
	// ErrMaxOrderAmountExceeded indicates that the wallet cannot cover the order.
	ErrMaxOrderAmountExceeded = errors.New("maximum order amount exceeded")
	// ErrOrderAlreadyExists indicates an active buy order for the same item.
	ErrOrderAlreadyExists = errors.New("order already exists")
	// ErrBuyOrderFailed indicates any other refusal to place the order.
	ErrBuyOrderFailed = errors.New("can't create buy order")
	// ErrPriceHistoryNotFound indicates a listing page without a price history.
	ErrPriceHistoryNotFound = errors.New("price history not found on listing page")
	// ErrMalformedPriceHistory indicates a price history that cannot be parsed.
	ErrMalformedPriceHistory = errors.New("malformed price history")
)
