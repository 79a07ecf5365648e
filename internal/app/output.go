package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/steam-session/internal/service/market"
	"github.com/oshokin/steam-session/internal/session"
)

// OutputFormat selects how results are printed.
type OutputFormat string

// Supported output formats.
const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// ErrUnknownOutputFormat indicates an unsupported output format.
var ErrUnknownOutputFormat = errors.New("unknown output format")

// ParseOutputFormat parses an output format name, defaulting to table.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch format := OutputFormat(strings.ToLower(strings.TrimSpace(value))); format {
	case "":
		return OutputTable, nil
	case OutputTable, OutputJSON, OutputYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: '%s' (want table, json or yaml)", ErrUnknownOutputFormat, value)
	}
}

// writeCookies prints session cookies.
func writeCookies(w io.Writer, format OutputFormat, cookies []session.Cookie, now time.Time) error {
	if format != OutputTable {
		return writeStructured(w, format, cookies)
	}

	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintln(table, "NAME\tVALUE\tEXPIRES")

	for _, cookie := range cookies {
		fmt.Fprintf(table, "%s\t%s\t%s\n", cookie.Name, cookie.Value, describeExpiry(cookie, now))
	}

	return table.Flush()
}

// writeSales prints a price history.
func writeSales(w io.Writer, format OutputFormat, sales []market.Sale) error {
	if format != OutputTable {
		return writeStructured(w, format, sales)
	}

	table := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(table, "TIME\tPRICE\tSOLD\t")

	for _, sale := range sales {
		fmt.Fprintf(table, "%s\t%.3f\t%s\t\n",
			sale.Time.Format(time.DateTime), sale.Price, humanize.Comma(int64(sale.Quantity)))
	}

	return table.Flush()
}

func writeStructured(w io.Writer, format OutputFormat, value any) error {
	switch format {
	case OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(value)
	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(value); err != nil {
			return err
		}

		return encoder.Close()
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownOutputFormat, format)
	}
}

func describeExpiry(cookie session.Cookie, now time.Time) string {
	if cookie.Expires == nil {
		return "session"
	}

	return humanize.RelTime(*cookie.Expires, now, "ago", "from now")
}
