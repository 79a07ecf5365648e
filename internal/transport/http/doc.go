// Package http is the HTTP transport used to talk to Steam Community.
//
// Client performs form-encoded or plain requests, optionally through a proxy,
// and returns status, headers and the fully read body. Its round tripper chain
// injects the session cookies into requests, absorbs Set-Cookie headers from
// responses, adds a User-Agent and dumps traffic at debug level with
// credentials redacted.
package http
