package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// encryptPassword encrypts the password with the hex-encoded RSA key issued
// by Steam (PKCS#1 v1.5) and returns the base64 ciphertext.
func encryptPassword(modulusHex, exponentHex string, password []byte) (string, error) {
	key, err := parsePublicKey(modulusHex, exponentHex)
	if err != nil {
		return "", err
	}

	ciphertext, err := rsa.EncryptPKCS1v15(rand.Reader, key, password)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt password: %w", err)
	}

	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func parsePublicKey(modulusHex, exponentHex string) (*rsa.PublicKey, error) {
	modulus, ok := new(big.Int).SetString(strings.TrimSpace(modulusHex), 16)
	if !ok || modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: invalid RSA modulus", ErrMalformedServerResponse)
	}

	exponent, ok := new(big.Int).SetString(strings.TrimSpace(exponentHex), 16)
	if !ok || exponent.Sign() <= 0 || !exponent.IsInt64() || exponent.Int64() > math.MaxInt32 {
		return nil, fmt.Errorf("%w: invalid RSA exponent", ErrMalformedServerResponse)
	}

	return &rsa.PublicKey{N: modulus, E: int(exponent.Int64())}, nil
}
