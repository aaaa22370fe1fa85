package models

import "time"

// User represents a registered account plus its accountability-partner state.
// Partner is symmetric: if A.Partner == B.ID then B.Partner == A.ID, enforced
// by the pairing service transitions, never by a database constraint.
type User struct {
	ID            string    `bson:"id" json:"id"`
	Name          string    `bson:"name" json:"name"`
	Email         string    `bson:"email" json:"email"`
	Mobile        string    `bson:"mobile,omitempty" json:"mobile,omitempty"`
	PasswordHash  string    `bson:"password_hash" json:"-"`
	EmailVerified bool      `bson:"email_verified" json:"emailVerified"`

	// Partner holds the account id of the mutual partner, empty when unpaired.
	Partner string `bson:"partner,omitempty" json:"partner,omitempty"`
	// PendingRequests holds inbound pairing requests awaiting a decision,
	// as a set of sender account ids.
	PendingRequests []string `bson:"pending_requests" json:"pendingRequests"`

	// Login streak tracking.
	LastLoginDate time.Time `bson:"last_login_date,omitempty" json:"lastLoginDate,omitempty"`
	Streak        int       `bson:"streak" json:"streak"`

	// Progress counters shown on the dashboard.
	DSA   int `bson:"dsa" json:"dsa"`
	Dev   int `bson:"dev" json:"dev"`
	Total int `bson:"total" json:"total"`

	Course       string `bson:"course,omitempty" json:"course,omitempty"`
	College      string `bson:"college,omitempty" json:"college,omitempty"`
	Year         string `bson:"year,omitempty" json:"year,omitempty"`
	StartDate    string `bson:"start_date,omitempty" json:"startDate,omitempty"`
	LastPostDate string `bson:"last_post_date,omitempty" json:"lastPostDate,omitempty"`

	// Session bridge fields.
	TokenHash string `bson:"token_hash,omitempty" json:"-"`
	FCMToken  string `bson:"fcm_token,omitempty" json:"-"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserRegistrationData carries the fields a client submits on registration.
type UserRegistrationData struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Mobile    string `json:"mobile,omitempty"`
	Course    string `json:"course,omitempty"`
	College   string `json:"college,omitempty"`
	Year      string `json:"year,omitempty"`
	StartDate string `json:"startDate,omitempty"`
}

// PendingRequestView is a resolved inbound pairing request.
type PendingRequestView struct {
	From      string `json:"from"`
	FromName  string `json:"fromName"`
	FromEmail string `json:"fromEmail"`
}
