package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPFormat(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, OTPLength)
		for _, r := range code {
			assert.True(t, r >= '0' && r <= '9', "OTP must be numeric, got %q", code)
		}
	}
}

func TestGenerateOTPVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateOTP()
		require.NoError(t, err)
		seen[code] = true
	}
	// 50 draws from a million values colliding down to one would mean a
	// broken generator.
	assert.Greater(t, len(seen), 1)
}
