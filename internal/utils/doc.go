// Package utils provides small helpers shared by the transport and service
// layers: content type sniffing for debug dumps, random identifiers and
// User-Agent providers.
package utils
