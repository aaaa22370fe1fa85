package models

import "time"

// OTPRecord is the pending one-time code for an account, keyed 1:1 by user id.
// A record is overwritten on resend and marked verified exactly once; consumed
// records are left behind as an audit trail and garbage-collected by a TTL
// index a day after expiry.
type OTPRecord struct {
	UserID    string    `bson:"user_id" json:"userId"`
	Code      string    `bson:"code" json:"code"`
	Email     string    `bson:"email" json:"email"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	ExpiresAt time.Time `bson:"expires_at" json:"expiresAt"`
	Verified  bool      `bson:"verified" json:"verified"`
}

// Expired reports whether the code is past its validity window.
func (r *OTPRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
