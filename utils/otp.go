package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTPLength is the fixed width of generated verification codes.
const OTPLength = 6

var otpMax = big.NewInt(1000000)

// GenerateOTP returns a uniformly random 6-digit numeric code as a
// zero-padded string ("000000".."999999").
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", fmt.Errorf("failed to generate random code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
