package totp

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// testBase64Secret is bytes 0x01..0x14 encoded as base64.
	testBase64Secret = "AQIDBAUGBwgJCgsMDQ4PEBESExQ="
	// testHexSecret is the same 20 bytes encoded as hex.
	testHexSecret = "0102030405060708090a0b0c0d0e0f1011121314"
)

// TestGenerateCodeAt_GoldenVectors tests codes against precomputed reference values.
func TestGenerateCodeAt_GoldenVectors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		seconds  int64
		expected string
	}{
		{name: "epoch", seconds: 0, expected: "6KR59"},
		{name: "end of first window", seconds: 29, expected: "6KR59"},
		{name: "second window", seconds: 30, expected: "DW55B"},
		{name: "late 2023", seconds: 1700000000, expected: "3M9KK"},
		{name: "next window after late 2023", seconds: 1700000029, expected: "8BXYN"},
		{name: "same window later", seconds: 1700000030, expected: "8BXYN"},
		{name: "1234567890", seconds: 1234567890, expected: "79RVY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fromBase64, err := GenerateCodeAt(testBase64Secret, tt.seconds)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fromBase64)

			fromHex, err := GenerateCodeAt(testHexSecret, tt.seconds)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fromHex)
		})
	}
}

// TestGenerateCodeAt_RealWorldSecret tests a secret shaped like a maFile shared_secret.
func TestGenerateCodeAt_RealWorldSecret(t *testing.T) {
	t.Parallel()

	code, err := GenerateCodeAt("zvIayp3JPvtvX/QGHqsqKBk/44s=", 1600000000)
	require.NoError(t, err)
	assert.Equal(t, "KJDMM", code)
}

// TestGenerateCode_Shape tests that every code has five characters from the alphabet.
func TestGenerateCode_Shape(t *testing.T) {
	t.Parallel()

	start := time.Unix(1500000000, 0)

	for i := range 200 {
		code, err := GenerateCode(testBase64Secret, start.Add(time.Duration(i)*Period*time.Second))
		require.NoError(t, err)
		require.Len(t, code, CodeLength)

		for _, char := range code {
			assert.True(t, strings.ContainsRune(Alphabet, char), "unexpected character %q in %q", char, code)
		}
	}
}

// TestGenerateCode_Deterministic tests that a window always yields the same code.
func TestGenerateCode_Deterministic(t *testing.T) {
	t.Parallel()

	windowStart := int64(1700000010)

	first, err := GenerateCodeAt(testHexSecret, windowStart)
	require.NoError(t, err)

	for offset := range int64(20) {
		code, err := GenerateCodeAt(testHexSecret, windowStart+offset)
		require.NoError(t, err)
		assert.Equal(t, first, code)
	}

	next, err := GenerateCodeAt(testHexSecret, windowStart+Period)
	require.NoError(t, err)
	assert.NotEqual(t, first, next)
}

// TestDecodeSecret tests secret decoding.
func TestDecodeSecret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		secret      string
		expectedLen int
		expectError bool
	}{
		{name: "lowercase hex", secret: testHexSecret, expectedLen: 20},
		{name: "uppercase hex", secret: strings.ToUpper(testHexSecret), expectedLen: 20},
		{name: "padded base64", secret: testBase64Secret, expectedLen: 20},
		{name: "unpadded base64", secret: strings.TrimRight(testBase64Secret, "="), expectedLen: 20},
		{name: "url-safe base64", secret: "zvIayp3JPvtvX_QGHqsqKBk_44s=", expectedLen: 20},
		{name: "short base64 is accepted", secret: "AQID", expectedLen: 3},
		{name: "surrounding spaces", secret: "  " + testBase64Secret + " ", expectedLen: 20},
		{name: "empty", secret: "", expectError: true},
		{name: "garbage", secret: "%%%not base64%%%", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoded, err := DecodeSecret(tt.secret)
			if tt.expectError {
				require.ErrorIs(t, err, ErrInvalidSecretEncoding)

				return
			}

			require.NoError(t, err)
			assert.Len(t, decoded, tt.expectedLen)
		})
	}
}

// TestGenerateCodeAt_InvalidSecret tests that decoding errors are surfaced.
func TestGenerateCodeAt_InvalidSecret(t *testing.T) {
	t.Parallel()

	code, err := GenerateCodeAt("%%%", 0)
	require.ErrorIs(t, err, ErrInvalidSecretEncoding)
	assert.Empty(t, code)
}

// TestSecondsRemaining tests the remaining lifetime of the current code.
func TestSecondsRemaining(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(30), SecondsRemaining(time.Unix(60, 0)))
	assert.Equal(t, int64(1), SecondsRemaining(time.Unix(89, 0)))
	assert.Equal(t, int64(10), SecondsRemaining(time.Unix(1700000000, 0)))
}
