package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndExtractToken(t *testing.T) {
	token, err := GenerateToken("user-123", "user@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestExpiredTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "user@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenIsRejected(t *testing.T) {
	token, err := GenerateToken("user-123", "user@example.com", time.Hour)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestHashTokenIsDeterministic(t *testing.T) {
	token, err := GenerateToken("user-123", "user@example.com", time.Hour)
	require.NoError(t, err)

	assert.Equal(t, HashToken(token), HashToken(token))
	assert.NotEqual(t, HashToken(token), HashToken(token+"x"))
	assert.Len(t, HashToken(token), 64)
}
