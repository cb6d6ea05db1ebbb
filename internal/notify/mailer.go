// Package notify renders and delivers reservation emails. Rendering is
// pure; delivery goes through the Mailer interface so the queue consumer
// can be tested without a relay.
package notify

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Mailer delivers a rendered HTML message to one or more recipients.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, htmlBody string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	Host string
	Port string
	User string
	Pass string
	From string // display From header, e.g. `LunaBrew <info@lunabrew.com>`
}

// NewSMTPMailer builds an SMTPMailer from the mail configuration.
func NewSMTPMailer(host, port, user, pass, from string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, User: user, Pass: pass, From: from}
}

// Send composes a MIME message and submits it to the relay. The context
// is accepted for interface symmetry; net/smtp manages its own dial.
func (m *SMTPMailer) Send(_ context.Context, to []string, subject, htmlBody string) error {
	if m.Host == "" {
		return fmt.Errorf("smtp not configured")
	}
	msg := strings.Join([]string{
		"From: " + m.From,
		"To: " + strings.Join(to, ", "),
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=UTF-8",
		"",
		htmlBody,
	}, "\r\n")

	var auth smtp.Auth
	if m.User != "" {
		auth = smtp.PlainAuth("", m.User, m.Pass, m.Host)
	}
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.User, to, []byte(msg))
}

// LogMailer writes would-be deliveries to the process log. Used when no
// SMTP relay is configured so the consumer still drains the queue.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, to []string, subject, _ string) error {
	log.Printf("mail (dry-run): to=%v subject=%q", to, subject)
	return nil
}
