package app

import (
	"context"
	"fmt"
	"io"

	"github.com/oshokin/steam-session/internal/config"
	"github.com/oshokin/steam-session/internal/logger"
	"github.com/oshokin/steam-session/internal/service/auth"
	"github.com/oshokin/steam-session/internal/service/market"
	"github.com/oshokin/steam-session/internal/session"
)

// ExecuteBuyOrderCommand logs in and places a buy order.
func ExecuteBuyOrderCommand(ctx context.Context, cfg *config.Config, order market.BuyOrder, out io.Writer) error {
	c, err := newComponents(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	defer c.close()

	return runBuyOrder(ctx, c.auth, c.market, c.store, loginParams(cfg), order, out)
}

// ExecuteLastSalesCommand prints the price history of an item.
// With options.WithLogin set it logs in first.
func ExecuteLastSalesCommand(
	ctx context.Context,
	cfg *config.Config,
	marketHashName string,
	options market.LastSalesOptions,
	format OutputFormat,
	out io.Writer,
) error {
	c, err := newComponents(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	defer c.close()

	if options.WithLogin {
		if err = ensureLoggedIn(ctx, c.auth, c.store, loginParams(cfg)); err != nil {
			return err
		}
	}

	return runLastSales(ctx, c.market, marketHashName, options, format, out)
}

func runBuyOrder(
	ctx context.Context,
	authService auth.Service,
	marketService market.Service,
	store *session.Store,
	params auth.Params,
	order market.BuyOrder,
	out io.Writer,
) error {
	if err := ensureLoggedIn(ctx, authService, store, params); err != nil {
		return err
	}

	result, err := marketService.CreateBuyOrder(ctx, order)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(out, "buy order %s placed: %d x %s for %d (%s)\n",
		result.BuyOrderID, order.Quantity, order.MarketHashName, order.PriceTotal, order.Currency)

	return err
}

func runLastSales(
	ctx context.Context,
	marketService market.Service,
	marketHashName string,
	options market.LastSalesOptions,
	format OutputFormat,
	out io.Writer,
) error {
	sales, err := marketService.GetLastSales(ctx, marketHashName, options)
	if err != nil {
		return err
	}

	logger.Debugf(ctx, "Fetched %d price history points for '%s'", len(sales), marketHashName)

	return writeSales(out, format, sales)
}

// ensureLoggedIn logs in unless the store already holds a session.
func ensureLoggedIn(ctx context.Context, authService auth.Service, store *session.Store, params auth.Params) error {
	if store.HasSession() {
		return nil
	}

	if _, err := authService.Authenticate(ctx, params); err != nil {
		return describeLoginError(err)
	}

	return nil
}
