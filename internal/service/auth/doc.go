// Package auth logs a Steam account into Steam Community.
//
// An attempt runs strictly in order: it fetches the account's RSA key,
// encrypts the password, derives the mobile authenticator code and submits
// the login form. The outcome is either a set of session cookies merged into
// the store, or a typed error telling the caller what Steam wants next
// (a Steam Guard code, a captcha) or why the login was refused.
// Credentials are kept in memguard enclaves for the duration of an attempt.
package auth
