// Package market places buy orders on the Steam Community Market and reads
// the price history of listed items, using the session held in the cookie store.
package market
