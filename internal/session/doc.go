// Package session keeps the cookies of one logical Steam session in memory.
//
// A Store is the single source of truth for whether a client is logged in:
// the presence of a sessionid cookie means a login succeeded. Stores are
// created per session and passed by reference; there is no global store.
package session
