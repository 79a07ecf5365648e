package totp

import (
	"crypto/hmac"
	"crypto/sha1" //nolint:gosec // The service defines the code with HMAC-SHA1.
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	// Alphabet is the set of symbols a code is drawn from.
	Alphabet = "23456789BCDFGHJKMNPQRTVWXY"
	// CodeLength is the number of characters in a code.
	CodeLength = 5
	// Period is the lifetime of a code in seconds.
	Period = 30

	// truncationMask clears the sign bit of the dynamically truncated value.
	truncationMask = 0x7fffffff
	// offsetMask selects the truncation offset from the last digest byte.
	offsetMask = 0x0f
)

// ErrInvalidSecretEncoding indicates that the shared secret is neither hex nor base64.
var ErrInvalidSecretEncoding = errors.New("shared secret is neither hex nor base64 encoded")

//nolint:gochecknoglobals // Pre-compiled pattern used as a constant.
var hexSecretPattern = regexp.MustCompile(`^[0-9a-fA-F]{40}$`)

//nolint:gochecknoglobals // Tried in order when decoding base64 secrets.
var base64Encodings = []*base64.Encoding{
	base64.StdEncoding,
	base64.RawStdEncoding,
	base64.URLEncoding,
	base64.RawURLEncoding,
}

// DecodeSecret decodes a shared secret given as 40 hex characters or base64.
func DecodeSecret(sharedSecret string) ([]byte, error) {
	sharedSecret = strings.TrimSpace(sharedSecret)
	if sharedSecret == "" {
		return nil, fmt.Errorf("%w: empty secret", ErrInvalidSecretEncoding)
	}

	if hexSecretPattern.MatchString(sharedSecret) {
		return hex.DecodeString(sharedSecret)
	}

	for _, encoding := range base64Encodings {
		if decoded, err := encoding.DecodeString(sharedSecret); err == nil && len(decoded) > 0 {
			return decoded, nil
		}
	}

	return nil, ErrInvalidSecretEncoding
}

// GenerateCode returns the code for the window containing now.
func GenerateCode(sharedSecret string, now time.Time) (string, error) {
	return GenerateCodeAt(sharedSecret, now.Unix())
}

// GenerateCodeAt returns the code for the window containing the given Unix time.
func GenerateCodeAt(sharedSecret string, nowSeconds int64) (string, error) {
	key, err := DecodeSecret(sharedSecret)
	if err != nil {
		return "", err
	}

	return GenerateCodeFromKey(key, nowSeconds), nil
}

// GenerateCodeFromKey returns the code for an already decoded key.
func GenerateCodeFromKey(key []byte, nowSeconds int64) string {
	var counter [8]byte

	// Only the low 32 bits of the time step are used; the high word stays zero.
	binary.BigEndian.PutUint32(counter[4:], uint32(floorDiv(nowSeconds, Period))) //nolint:gosec // Truncation is intended.

	mac := hmac.New(sha1.New, key)
	mac.Write(counter[:])
	digest := mac.Sum(nil)

	offset := digest[len(digest)-1] & offsetMask
	fullCode := binary.BigEndian.Uint32(digest[offset:offset+4]) & truncationMask

	var builder strings.Builder

	builder.Grow(CodeLength)

	for range CodeLength {
		builder.WriteByte(Alphabet[fullCode%uint32(len(Alphabet))])

		fullCode /= uint32(len(Alphabet))
	}

	return builder.String()
}

// SecondsRemaining returns how long the code for now stays valid.
func SecondsRemaining(now time.Time) int64 {
	return Period - (now.Unix()-floorDiv(now.Unix(), Period)*Period)
}

func floorDiv(value, divisor int64) int64 {
	quotient := value / divisor
	if value%divisor != 0 && value < 0 {
		quotient--
	}

	return quotient
}
