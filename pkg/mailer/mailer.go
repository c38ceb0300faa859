// Package mailer sends enquiry notification emails through an SMTP relay.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// Message is a single outbound HTML email.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Mailer は通知メール送信のインターフェース
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig describes the relay and the authenticated sender.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string // also used as the From address
	Password string
	Timeout  time.Duration
}

// SMTPMailer is the production Mailer. A new connection is dialed per
// message.
type SMTPMailer struct {
	cfg SMTPConfig
}

// NewSMTPMailer creates an SMTPMailer for the given relay.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTPMailer{cfg: cfg}
}

var _ Mailer = (*SMTPMailer)(nil)

// Send builds msg and delivers it over STARTTLS with PLAIN auth.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return errors.New("mailer: recipient is required")
	}

	mm := mail.NewMsg()
	if err := mm.From(m.cfg.Username); err != nil {
		return fmt.Errorf("mailer: from: %w", err)
	}
	if err := mm.To(msg.To); err != nil {
		return fmt.Errorf("mailer: to: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := mm.ReplyTo(msg.ReplyTo); err != nil {
			return fmt.Errorf("mailer: reply-to: %w", err)
		}
	}
	mm.Subject(msg.Subject)
	mm.SetBodyString(mail.TypeTextHTML, msg.HTML)

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(m.cfg.Timeout),
	)
	if err != nil {
		return fmt.Errorf("mailer: client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, mm); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", msg.To, err)
	}
	return nil
}
