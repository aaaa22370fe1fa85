package user

import (
	otpRepo "github.com/SachinKokare07/partner-app/database/repository/otp"
	userRepo "github.com/SachinKokare07/partner-app/database/repository/user"
	"github.com/SachinKokare07/partner-app/models"
	"github.com/SachinKokare07/partner-app/services/mail"

	"github.com/go-redis/redis/v8"
)

// UserService defines business logic for registration, email verification and
// authentication. An account moves Unregistered -> PendingVerification ->
// Verified; only Verified accounts ever hold a session.
type UserService interface {
	// Register creates an unverified account, stores a fresh OTP and mails
	// it. Mail delivery failure does not fail registration.
	Register(req models.UserRegistrationData) (*RegisterResponse, error)
	// CheckVerification validates a submitted code and, on the first match
	// within the validity window, flips emailVerified and establishes a
	// session.
	CheckVerification(userID, code string) (*AuthResponse, error)
	// ResendOTP regenerates the code for an unverified account, overwriting
	// the previous one, and mails it again.
	ResendOTP(email string) error
	// Authenticate verifies credentials and returns a session for verified
	// accounts.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user by its unique ID.
	GetUserByID(userID string) (*models.User, error)
	// GetUserByEmail retrieves a user by its email.
	GetUserByEmail(email string) (*models.User, error)
	// RevokeAuthToken revokes the user's session (for logout).
	RevokeAuthToken(userID string) error
	// UpdateFCMToken stores the device push token for notifications.
	UpdateFCMToken(userID, token string) error
}

// WelcomeSender hands the post-verification welcome email to a background
// queue. Delivery is best-effort.
type WelcomeSender interface {
	EnqueueWelcomeEmail(email, name string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo    userRepo.UserRepository
	OTPRepo otpRepo.OTPRepository
	Mailer  mail.Mailer
	// Welcome is optional; when nil the welcome email is sent inline.
	Welcome WelcomeSender
	// Cache is the auth token cache; optional, auth falls back to the
	// database when absent.
	Cache *redis.Client
}

// RegisterResponse reports the outcome of a registration. EmailDelivered is
// separate from success: a failed send leaves the stored code valid and
// retrievable through a resend.
type RegisterResponse struct {
	UserID         string `json:"userId"`
	Email          string `json:"email"`
	EmailDelivered bool   `json:"emailDelivered"`
	Message        string `json:"message"`
}

// AuthResponse contains the user's ID, token, and profile summary.
type AuthResponse struct {
	ID     string `json:"id"`
	Token  string `json:"token"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Streak int    `json:"streak"`
}
