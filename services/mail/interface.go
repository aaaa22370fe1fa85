package mail

// Mailer delivers transactional email. Delivery failures are reported to the
// caller but never roll back the state that triggered the send.
type Mailer interface {
	// SendOTPEmail delivers a verification code. Name may be empty.
	SendOTPEmail(email, code, name string) error
	// SendWelcomeEmail greets a freshly verified account.
	SendWelcomeEmail(email, name string) error
}
