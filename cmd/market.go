package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/oshokin/steam-session/internal/app"
	"github.com/oshokin/steam-session/internal/service/market"
)

var errUnknownCurrency = errors.New("unknown currency")

var (
	//nolint:gochecknoglobals // Cobra command requires a global definition.
	marketCmd = &cobra.Command{
		Use:   "market",
		Short: "Steam Community Market commands",
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	buyOrderCmd = &cobra.Command{
		Use:   "buy-order",
		Short: "Log in and place a buy order",
		Long: `Places a buy order for an item. The price is the total for all items,
in the smallest unit of the wallet currency (cents for USD).

Example:
  steam-session market buy-order -a gaben -s <shared secret> \
    --name "AK-47 | Redline (Field-Tested)" --price 1500 --quantity 2 --currency USD`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bindCredentialFlags(cmd.Flags(), appConfig)

			order, err := buyOrderFromFlags(cmd.Flags())
			if err != nil {
				return fmt.Errorf("failed to parse flags: %w", err)
			}

			return app.ExecuteBuyOrderCommand(cmd.Context(), appConfig, order, os.Stdout)
		},
	}

	//nolint:gochecknoglobals // Cobra command requires a global definition.
	lastSalesCmd = &cobra.Command{
		Use:   "last-sales",
		Short: "Show the recent sales of a market item",
		Long: `Prints the price history of an item as shown on its market listing page.
Anonymous by default; --with-login signs in first so prices follow the wallet currency.

Example:
  steam-session market last-sales --name "AK-47 | Redline (Field-Tested)" -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			bindCredentialFlags(flags, appConfig)

			format, err := outputFormatFlag(flags)
			if err != nil {
				return fmt.Errorf("failed to parse flags: %w", err)
			}

			name, _ := flags.GetString("name")
			options := market.LastSalesOptions{}
			options.AppID, _ = flags.GetInt("appid")
			options.WithLogin, _ = flags.GetBool("with-login")
			options.Proxy, _ = flags.GetString("request-proxy")

			return app.ExecuteLastSalesCommand(cmd.Context(), appConfig, name, options, format, os.Stdout)
		},
	}
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	addCredentialFlags(buyOrderCmd.Flags())
	addBuyOrderFlags(buyOrderCmd.Flags())

	_ = buyOrderCmd.MarkFlagRequired("name")
	_ = buyOrderCmd.MarkFlagRequired("price")

	lastSalesFlags := lastSalesCmd.Flags()
	addCredentialFlags(lastSalesFlags)
	lastSalesFlags.Int("appid", market.DefaultAppID, "Steam application ID of the item.")
	lastSalesFlags.StringP("name", "n", "", "market hash name of the item.")
	lastSalesFlags.Bool("with-login", false, "log in and send the session cookies.")
	lastSalesFlags.String("request-proxy", "", "proxy for this lookup only, overriding --proxy.")
	lastSalesFlags.StringP("output", "o", "", "output format: table, json or yaml.")

	_ = lastSalesCmd.MarkFlagRequired("name")

	marketCmd.AddCommand(buyOrderCmd, lastSalesCmd)
	rootCmd.AddCommand(marketCmd)
}

// addBuyOrderFlags registers the flags describing a buy order.
func addBuyOrderFlags(flags *pflag.FlagSet) {
	flags.Int("appid", market.DefaultAppID, "Steam application ID of the item.")
	flags.StringP("name", "n", "", "market hash name of the item.")
	flags.Int64("price", 0, "total price in the smallest currency unit.")
	flags.IntP("quantity", "q", 1, "number of items to buy.")
	flags.String("currency", market.CurrencyUSD.String(), "wallet currency: USD, GBP, EUR, CHF, RUB or its code.")
}

// buyOrderFromFlags builds a buy order from the buy-order flags.
func buyOrderFromFlags(flags *pflag.FlagSet) (market.BuyOrder, error) {
	var order market.BuyOrder

	order.AppID, _ = flags.GetInt("appid")
	order.MarketHashName, _ = flags.GetString("name")
	order.PriceTotal, _ = flags.GetInt64("price")
	order.Quantity, _ = flags.GetInt("quantity")

	currencyName, _ := flags.GetString("currency")

	currency, ok := market.ParseCurrency(currencyName)
	if !ok {
		return market.BuyOrder{}, fmt.Errorf("%w: '%s'", errUnknownCurrency, currencyName)
	}

	order.Currency = currency

	return order, nil
}
