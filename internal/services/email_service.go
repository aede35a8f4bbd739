package services

import (
	"prizm_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// EmailSender delivers transactional mail. Delivery is always best-effort:
// callers log failures and move on.
type EmailSender interface {
	Send(to, subject, body string) error
}

// SMTPEmailSender sends mail over SMTP via gomail.
type SMTPEmailSender struct {
	cfg *config.Config
}

func NewSMTPEmailSender(cfg *config.Config) *SMTPEmailSender {
	return &SMTPEmailSender{cfg: cfg}
}

func (e *SMTPEmailSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		e.cfg.Email.SMTPHost,
		e.cfg.Email.SMTPPort,
		e.cfg.Email.SMTPUser,
		e.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// NoopEmailSender is used when email delivery is disabled.
type NoopEmailSender struct{}

func (NoopEmailSender) Send(to, subject, body string) error {
	return nil
}
