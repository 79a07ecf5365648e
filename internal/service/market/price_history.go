package market

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// priceHistoryMarker starts the price history literal embedded in listing pages.
	priceHistoryMarker = "var line1="
	// priceHistoryTimeLayout is the layout of points such as "Nov 27 2013 01: +0".
	priceHistoryTimeLayout = "Jan 02 2006 15:"
)

// parsePriceHistory extracts the price history embedded in a listing page.
func parsePriceHistory(page []byte) ([]Sale, error) {
	start := bytes.Index(page, []byte(priceHistoryMarker))
	if start < 0 {
		return nil, ErrPriceHistoryNotFound
	}

	start += len(priceHistoryMarker)

	end := bytes.IndexByte(page[start:], ';')
	if end < 0 {
		return nil, fmt.Errorf("%w: unterminated literal", ErrMalformedPriceHistory)
	}

	var points [][]json.RawMessage
	if err := json.Unmarshal(page[start:start+end], &points); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPriceHistory, err)
	}

	sales := make([]Sale, 0, len(points))

	for i, point := range points {
		sale, err := parsePoint(point)
		if err != nil {
			return nil, fmt.Errorf("%w: point %d: %w", ErrMalformedPriceHistory, i, err)
		}

		sales = append(sales, sale)
	}

	return sales, nil
}

// parsePoint parses a [date, price, quantity] triple.
func parsePoint(point []json.RawMessage) (Sale, error) {
	if len(point) < 3 {
		return Sale{}, fmt.Errorf("expected 3 fields, got %d", len(point))
	}

	var date string
	if err := json.Unmarshal(point[0], &date); err != nil {
		return Sale{}, fmt.Errorf("invalid date: %w", err)
	}

	saleTime, err := parsePointTime(date)
	if err != nil {
		return Sale{}, err
	}

	var price float64
	if err = json.Unmarshal(point[1], &price); err != nil {
		return Sale{}, fmt.Errorf("invalid price: %w", err)
	}

	quantity, err := parseQuantity(point[2])
	if err != nil {
		return Sale{}, err
	}

	return Sale{Time: saleTime, Price: price, Quantity: quantity}, nil
}

// parsePointTime parses "Nov 27 2013 01: +0", whose trailing offset is in hours.
func parsePointTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	offsetHours := 0

	if idx := strings.LastIndexAny(value, "+-"); idx > 0 && value[idx-1] == ' ' {
		hours, err := strconv.Atoi(value[idx:])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid offset in %q: %w", value, err)
		}

		offsetHours = hours
		value = strings.TrimSpace(value[:idx])
	}

	parsed, err := time.Parse(priceHistoryTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}

	return parsed.Add(-time.Duration(offsetHours) * time.Hour).UTC(), nil
}

// parseQuantity accepts quantities encoded as strings ("12") or numbers.
func parseQuantity(raw json.RawMessage) (int, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		quantity, convErr := strconv.Atoi(strings.TrimSpace(text))
		if convErr != nil {
			return 0, fmt.Errorf("invalid quantity %q: %w", text, convErr)
		}

		return quantity, nil
	}

	var quantity int
	if err := json.Unmarshal(raw, &quantity); err != nil {
		return 0, fmt.Errorf("invalid quantity: %w", err)
	}

	return quantity, nil
}
