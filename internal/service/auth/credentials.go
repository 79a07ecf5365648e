package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/awnumar/memguard"

	"github.com/oshokin/steam-session/internal/totp"
)

// Params are the credentials of a login attempt.
type Params struct {
	// AccountName is the Steam login name.
	AccountName string
	// Password is the account password.
	Password string
	// SharedSecret is the mobile authenticator shared secret (hex or base64).
	// It takes precedence over TwoFactorCode.
	SharedSecret string
	// TwoFactorCode is a code typed by the user.
	TwoFactorCode string
}

// validate reports whether the parameters are enough to attempt a login.
func (p Params) validate() error {
	switch {
	case strings.TrimSpace(p.AccountName) == "":
		return fmt.Errorf("%w: account name is empty", ErrInvalidParameters)
	case p.Password == "":
		return fmt.Errorf("%w: password is empty", ErrInvalidParameters)
	case strings.TrimSpace(p.SharedSecret) == "" && strings.TrimSpace(p.TwoFactorCode) == "":
		return fmt.Errorf("%w: either a shared secret or a two-factor code is required", ErrInvalidParameters)
	}

	return nil
}

// credentials keeps the password and shared secret of one attempt sealed in enclaves
// until the step that needs them. Only the enclave copies and the buffers opened from
// them are wiped. The Params strings they were copied from are immutable and live on
// until the garbage collector reclaims them.
type credentials struct {
	accountName   string
	password      *memguard.Enclave
	sharedSecret  *memguard.Enclave
	twoFactorCode string
}

// sealCredentials moves the secrets of params into enclaves.
func sealCredentials(params Params) *credentials {
	return &credentials{
		accountName:   strings.TrimSpace(params.AccountName),
		password:      seal(params.Password),
		sharedSecret:  seal(strings.TrimSpace(params.SharedSecret)),
		twoFactorCode: strings.TrimSpace(params.TwoFactorCode),
	}
}

// encryptPassword opens the password enclave only for the duration of the encryption.
func (c *credentials) encryptPassword(modulusHex, exponentHex string) (string, error) {
	buffer, err := c.password.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open password enclave: %w", err)
	}

	defer buffer.Destroy()

	return encryptPassword(modulusHex, exponentHex, buffer.Bytes())
}

// twoFactorCodeAt derives the code from the shared secret, or falls back to the typed code.
func (c *credentials) twoFactorCodeAt(now time.Time) (string, error) {
	if c.sharedSecret == nil {
		return c.twoFactorCode, nil
	}

	buffer, err := c.sharedSecret.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open shared secret enclave: %w", err)
	}

	defer buffer.Destroy()

	return totp.GenerateCode(buffer.String(), now)
}

// destroy drops the references to the enclaves. The ciphertext stays in ordinary
// memory until collected, and memguard.Purge on exit wipes the key that opens it.
func (c *credentials) destroy() {
	c.password = nil
	c.sharedSecret = nil
	c.twoFactorCode = ""
}

// seal copies value into an enclave. Empty values yield nil.
func seal(value string) *memguard.Enclave {
	if value == "" {
		return nil
	}

	// NewEnclave wipes its argument, so it gets a private copy.
	return memguard.NewEnclave([]byte(value))
}
