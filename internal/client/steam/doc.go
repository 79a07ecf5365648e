// Package steam provides a client for the Steam Community web endpoints
// used to establish and use a browser session: the who-am-I check, RSA key
// issuance, login submission and the market endpoints.
// It speaks JSON and HTML over the session-aware transport and leaves the
// interpretation of login outcomes to the auth service.
package steam
