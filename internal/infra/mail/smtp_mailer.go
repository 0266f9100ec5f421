// Package mail provides the SMTP-backed implementation of the outbound
// mail service.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"wellclub/config"
	"wellclub/internal/domain/service"
	"wellclub/internal/errors"
)

type smtpMailer struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.MailService, error) {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		return nil, errors.New("smtp configuration must be provided")
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpMailer{
		addr:     fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port),
		from:     cfg.SMTP.From,
		auth:     auth,
		sendFunc: smtp.SendMail,
	}, nil
}

// Send delivers a plain-text message to a single recipient.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "mail send aborted")
	}

	msg := buildMessage(m.from, to, subject, body)
	if err := m.sendFunc(m.addr, m.auth, m.from, []string{to}, msg); err != nil {
		return errors.Wrapf(err, "failed to send mail to %s", to)
	}

	return nil
}

// buildMessage assembles an RFC 5322 plain-text message.
func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}
