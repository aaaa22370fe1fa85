package otpRepo

import (
	"time"

	"github.com/SachinKokare07/partner-app/models"
)

// OTPRepository persists at most one live code per account.
type OTPRepository interface {
	// Put overwrites any existing record for userID. This is the resend
	// path; overwrite is never an error.
	Put(userID, code, email string, ttl time.Duration) error
	// Get retrieves the record for userID. Returns (nil, nil) when absent.
	Get(userID string) (*models.OTPRecord, error)
	// MarkVerified sets verified=true. Idempotent.
	MarkVerified(userID string) error
}
