package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"school_admin/internal/logger"
)

// Mailer delivers the password-reset link out of band. The link must never
// be written to an HTTP response.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, link string) error
}

// SMTPConfig carries the connection settings for the SMTP mailer.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Configured reports whether the config is complete enough to send mail.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.From != ""
}

// SMTPMailer sends reset links through a plain SMTP relay.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

var _ Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) SendPasswordReset(_ context.Context, to, link string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: Password reset\r\n\r\n"+
			"A password reset was requested for your account.\r\n"+
			"Use the link below within one hour:\r\n\r\n%s\r\n\r\n"+
			"If you did not request this, you can ignore this message.\r\n",
		m.cfg.From, to, link,
	)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send reset mail to %q: %w", to, err)
	}
	return nil
}

// LogMailer writes the reset link to the server log instead of sending it.
// Used when SMTP is not configured (local development).
type LogMailer struct {
	log *logger.Logger
}

func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

var _ Mailer = (*LogMailer)(nil)

func (m *LogMailer) SendPasswordReset(_ context.Context, to, link string) error {
	if m.log != nil {
		m.log.Infow("password_reset_link", "to", to, "link", link)
	}
	return nil
}
