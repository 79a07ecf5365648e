package utils

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsTextContentType tests the IsTextContentType function.
func TestIsTextContentType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		expected    bool
	}{
		{
			name:        "text/html with charset",
			contentType: "text/html; charset=UTF-8",
			expected:    true,
		},
		{
			name:        "application/json",
			contentType: "application/json",
			expected:    true,
		},
		{
			name:        "form body",
			contentType: "application/x-www-form-urlencoded",
			expected:    true,
		},
		{
			name:        "javascript",
			contentType: "application/javascript",
			expected:    true,
		},
		{
			name:        "image/png",
			contentType: "image/png",
			expected:    false,
		},
		{
			name:        "text with unsupported charset",
			contentType: "text/plain; charset=windows-1251",
			expected:    false,
		},
		{
			name:        "empty content type",
			contentType: "",
			expected:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsTextContentType(tt.contentType))
		})
	}
}

// TestRandomHex tests the RandomHex function.
func TestRandomHex(t *testing.T) {
	t.Parallel()

	first, err := RandomHex(12)
	require.NoError(t, err)
	assert.Len(t, first, 24)

	_, err = hex.DecodeString(first)
	require.NoError(t, err)
	assert.Equal(t, strings.ToLower(first), first)

	second, err := RandomHex(12)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	empty, err := RandomHex(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

// TestMap tests the Map function.
func TestMap(t *testing.T) {
	t.Parallel()

	input := []string{"sessionid", "steamLoginSecure"}
	result := Map(input, strings.ToUpper)
	assert.Equal(t, []string{"SESSIONID", "STEAMLOGINSECURE"}, result)

	assert.Empty(t, Map([]string{}, strings.ToUpper))
}
