package market

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/oshokin/steam-session/internal/client/steam"
	"github.com/oshokin/steam-session/internal/config"
	"github.com/oshokin/steam-session/internal/logger"
	"github.com/oshokin/steam-session/internal/session"
)

// Steam result codes of the buy order endpoint.
const (
	buyOrderResultOK                 = 1
	buyOrderResultMaxAmountExceeded  = 25
	buyOrderResultOrderAlreadyExists = 29
)

const (
	// defaultBuyOrderFailureMessage is reported when Steam refuses an order without a message.
	defaultBuyOrderFailureMessage = "unknown result"
	// withLoginKeySuffix marks cache keys of histories fetched with the session cookies.
	withLoginKeySuffix = "#login"
)

// Service provides market operations on behalf of the logged-in account.
type Service interface {
	// CreateBuyOrder places a buy order.
	CreateBuyOrder(ctx context.Context, order BuyOrder) (*BuyOrderResult, error)
	// GetLastSales returns the price history of an item.
	GetLastSales(ctx context.Context, marketHashName string, options LastSalesOptions) ([]Sale, error)
}

// ServiceImpl implements Service on top of the Steam Community client.
type ServiceImpl struct {
	// client talks to Steam Community.
	client steam.Client
	// store holds the session cookies.
	store *session.Store
	// priceHistoryCache caches parsed price histories by item.
	priceHistoryCache *expirable.LRU[priceHistoryKey, []Sale]
}

// priceHistoryKey identifies a cached price history.
type priceHistoryKey struct {
	appID          int
	marketHashName string
	withLogin      bool
}

// NewService creates a new market service.
func NewService(cfg *config.Config, client steam.Client, store *session.Store) *ServiceImpl {
	size := cfg.PriceHistoryCacheSize
	if size <= 0 {
		size = config.DefaultPriceHistoryCacheSize
	}

	return &ServiceImpl{
		client:            client,
		store:             store,
		priceHistoryCache: expirable.NewLRU[priceHistoryKey, []Sale](size, nil, cfg.ParsedPriceHistoryCacheTTL),
	}
}

// CreateBuyOrder places a buy order. It requires a logged-in session.
func (s *ServiceImpl) CreateBuyOrder(ctx context.Context, order BuyOrder) (*BuyOrderResult, error) {
	sessionID := s.store.SessionID()
	if sessionID == "" {
		return nil, ErrNotLoggedIn
	}

	if err := order.validate(); err != nil {
		return nil, err
	}

	response, err := s.client.CreateBuyOrder(ctx, &steam.BuyOrderRequest{
		SessionID:      sessionID,
		AppID:          order.AppID,
		MarketHashName: strings.TrimSpace(order.MarketHashName),
		PriceTotal:     order.PriceTotal,
		Quantity:       order.Quantity,
		Currency:       int(order.Currency),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuyOrderFailed, err)
	}

	switch response.Success {
	case buyOrderResultOK:
		logger.Infof(ctx, "Buy order %s placed for %d x '%s'", response.BuyOrderID, order.Quantity, order.MarketHashName)

		return &BuyOrderResult{BuyOrderID: response.BuyOrderID}, nil
	case buyOrderResultMaxAmountExceeded:
		return nil, ErrMaxOrderAmountExceeded
	case buyOrderResultOrderAlreadyExists:
		return nil, ErrOrderAlreadyExists
	}

	message := strings.TrimSpace(response.Message)
	if message == "" {
		message = defaultBuyOrderFailureMessage
	}

	return nil, fmt.Errorf("%w: %s (code %d)", ErrBuyOrderFailed, message, response.Success)
}

// GetLastSales returns the price history of an item from its listing page.
// Results are cached per application, item and login mode.
func (s *ServiceImpl) GetLastSales(
	ctx context.Context,
	marketHashName string,
	options LastSalesOptions,
) ([]Sale, error) {
	if options.AppID <= 0 {
		options.AppID = DefaultAppID
	}

	key := priceHistoryKey{
		appID:          options.AppID,
		marketHashName: strings.TrimSpace(marketHashName),
		withLogin:      options.WithLogin,
	}

	if sales, ok := s.priceHistoryCache.Get(key); ok {
		logger.Debugf(ctx, "Price history cache hit for %s", key)

		return slices.Clone(sales), nil
	}

	page, err := s.client.GetListingPage(ctx, key.appID, key.marketHashName, steam.ListingOptions{
		Proxy:     options.Proxy,
		WithLogin: options.WithLogin,
	})
	if err != nil {
		return nil, fmt.Errorf("can't get last sales: %w", err)
	}

	sales, err := parsePriceHistory(page)
	if err != nil {
		return nil, fmt.Errorf("can't get last sales: %w", err)
	}

	s.priceHistoryCache.Add(key, sales)

	return slices.Clone(sales), nil
}

// String renders the key for logs.
func (k priceHistoryKey) String() string {
	name := fmt.Sprintf("%d/%s", k.appID, k.marketHashName)
	if k.withLogin {
		name += withLoginKeySuffix
	}

	return name
}
