package market

import (
	"fmt"
	"strings"
	"time"
)

// DefaultAppID is the application whose listings are read when none is given (Counter-Strike).
const DefaultAppID = 730

// Currency is a Steam wallet currency code.
type Currency int

// Supported wallet currencies.
const (
	CurrencyUSD Currency = 1
	CurrencyGBP Currency = 2
	CurrencyEUR Currency = 3
	CurrencyCHF Currency = 4
	CurrencyRUB Currency = 5
)

var currencyNames = map[Currency]string{
	CurrencyUSD: "USD",
	CurrencyGBP: "GBP",
	CurrencyEUR: "EUR",
	CurrencyCHF: "CHF",
	CurrencyRUB: "RUB",
}

// String returns the ISO code of the currency.
func (c Currency) String() string {
	if name, ok := currencyNames[c]; ok {
		return name
	}

	return fmt.Sprintf("Currency(%d)", int(c))
}

// IsValid reports whether the currency is supported.
func (c Currency) IsValid() bool {
	_, ok := currencyNames[c]

	return ok
}

// ParseCurrency parses a numeric code or an ISO code such as "EUR".
func ParseCurrency(value string) (Currency, bool) {
	value = strings.ToUpper(strings.TrimSpace(value))

	for currency, name := range currencyNames {
		if value == name || value == fmt.Sprint(int(currency)) {
			return currency, true
		}
	}

	return 0, false
}

// BuyOrder describes a buy order to place.
type BuyOrder struct {
	// AppID is the Steam application ID of the item.
	AppID int
	// MarketHashName is the market name of the item.
	MarketHashName string
	// PriceTotal is the total price in the smallest currency unit (cents).
	PriceTotal int64
	// Quantity is the number of items to buy.
	Quantity int
	// Currency is the wallet currency.
	Currency Currency
}

// BuyOrderResult is a placed buy order.
type BuyOrderResult struct {
	// BuyOrderID identifies the order.
	BuyOrderID string
}

// Sale is one point of an item's price history.
type Sale struct {
	// Time is the start of the hour (or day) the point covers, in UTC.
	Time time.Time `json:"time" yaml:"time"`
	// Price is the median sale price.
	Price float64 `json:"price" yaml:"price"`
	// Quantity is the number of items sold.
	Quantity int `json:"quantity" yaml:"quantity"`
}

// LastSalesOptions tunes a price history request.
type LastSalesOptions struct {
	// AppID is the Steam application ID, DefaultAppID when zero.
	AppID int
	// Proxy overrides the configured proxy for this request.
	Proxy string
	// WithLogin sends the session cookies with the request.
	WithLogin bool
}

func (o BuyOrder) validate() error {
	switch {
	case o.AppID <= 0:
		return fmt.Errorf("%w: appid must be positive", ErrInvalidBuyOrder)
	case strings.TrimSpace(o.MarketHashName) == "":
		return fmt.Errorf("%w: market hash name is empty", ErrInvalidBuyOrder)
	case o.PriceTotal <= 0:
		return fmt.Errorf("%w: price must be positive", ErrInvalidBuyOrder)
	case o.Quantity <= 0:
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidBuyOrder)
	case !o.Currency.IsValid():
		return fmt.Errorf("%w: unsupported currency %s", ErrInvalidBuyOrder, o.Currency)
	}

	return nil
}
