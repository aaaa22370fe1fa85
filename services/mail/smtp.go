package mail

import (
	"fmt"
	"net/smtp"

	"github.com/SachinKokare07/partner-app/config"
)

// SMTPMailer sends templated email over plain SMTP.
type SMTPMailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

// NewSMTPMailer builds a mailer from the application configuration.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	from := cfg.EmailFrom
	if from == "" {
		from = cfg.EmailUser
	}
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     from,
		username: cfg.EmailUser,
		password: cfg.EmailPass,
	}
}

// SendOTPEmail delivers the verification code email.
func (m *SMTPMailer) SendOTPEmail(email, code, name string) error {
	if name == "" {
		name = "User"
	}
	subject := "Your OTP Code - Partner App"
	body, err := renderOTPBody(name, code)
	if err != nil {
		return fmt.Errorf("failed to render OTP email: %w", err)
	}
	return m.send(email, subject, body)
}

// SendWelcomeEmail delivers the post-verification welcome email.
func (m *SMTPMailer) SendWelcomeEmail(email, name string) error {
	if name == "" {
		name = "User"
	}
	subject := "Welcome to Partner App!"
	body, err := renderWelcomeBody(name)
	if err != nil {
		return fmt.Errorf("failed to render welcome email: %w", err)
	}
	return m.send(email, subject, body)
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf(
		"From: \"Partner App\" <%s>\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.from, to, subject, htmlBody,
	)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}
