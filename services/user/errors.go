package user

import "errors"

// Service errors. Handlers map these to HTTP codes; everything else is
// reported as a generic failure.
var (
	// ErrValidation covers missing or malformed registration input.
	ErrValidation = errors.New("name, email and password are required")
	// ErrEmailTaken is returned when the email belongs to an existing account.
	ErrEmailTaken = errors.New("a user with this email already exists")
	// ErrInvalidInput means the submitted code is not a 6-digit string.
	ErrInvalidInput = errors.New("please enter a valid 6-digit OTP")
	// ErrOTPNotFound means no code is pending for the account.
	ErrOTPNotFound = errors.New("OTP not found, please request a new one")
	// ErrOTPExpired means the code is past its validity window.
	ErrOTPExpired = errors.New("OTP expired, please request a new one")
	// ErrOTPMismatch means the submitted code differs from the stored one.
	ErrOTPMismatch = errors.New("invalid OTP, please check and try again")
	// ErrOTPConsumed means the code was already used once.
	ErrOTPConsumed = errors.New("OTP already used, please request a new one")
	// ErrAlreadyVerified rejects a resend for a verified account.
	ErrAlreadyVerified = errors.New("email already verified")
	// ErrUserNotFound means no account matches the given identifier.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers unknown email or wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrNotVerified gates login for accounts still pending verification.
	ErrNotVerified = errors.New("please verify your email with OTP before logging in")
)
