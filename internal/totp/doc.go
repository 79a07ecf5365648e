// Package totp generates Steam Guard mobile authenticator codes.
//
// The algorithm is the RFC 6238 HMAC-SHA1 time step with a 30 second period,
// but the truncated value is rendered as five characters of Steam's own
// 26-symbol alphabet instead of decimal digits.
package totp
