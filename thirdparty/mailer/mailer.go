package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/srisatyasai136/review/cmd/config"
	"gopkg.in/gomail.v2"
)

// StatusOK is the SMTP reply code reported for an accepted message.
const StatusOK = 250

// ErrMissingCredentials is returned when the SMTP settings are incomplete.
var ErrMissingCredentials = errors.New("mailer: missing smtp credentials")

// Email represents an email message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// DispatchResult describes an accepted message.
type DispatchResult struct {
	StatusCode int
}

// Gateway delivers email. Send blocks until the provider accepts or rejects
// the message.
type Gateway interface {
	Send(ctx context.Context, email Email) (*DispatchResult, error)
}

type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// Mailer is an SMTP Gateway.
type Mailer struct {
	config config.MailConfig
	dialer sender
}

// NewMailer does not dial; incomplete settings surface on Send.
func NewMailer(cfg config.MailConfig) *Mailer {
	return &Mailer{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *Mailer) Send(ctx context.Context, email Email) (*DispatchResult, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	if len(email.To) == 0 {
		return nil, fmt.Errorf("mailer: no recipients specified")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	msg := gomail.NewMessage()
	m.setEmailMessage(msg, email)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return nil, fmt.Errorf("mailer: send to %v: %w", email.To, err)
	}
	return &DispatchResult{StatusCode: StatusOK}, nil
}

func (m *Mailer) setEmailMessage(msg *gomail.Message, email Email) {
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", email.To...)
	msg.SetHeader("Subject", email.Subject)

	msg.SetBody("text/plain", email.Body)
	if email.HTMLBody != "" {
		msg.AddAlternative("text/html", email.HTMLBody)
	}
}

func (m *Mailer) validate() error {
	c := m.config
	if c.Host == "" || c.Port == 0 || c.Username == "" || c.Password == "" || c.From == "" {
		return ErrMissingCredentials
	}
	return nil
}
