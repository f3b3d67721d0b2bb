package email

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
)

// ErrNotConfigured is returned by dispatchers missing credentials.
var ErrNotConfigured = errors.New("email service is not configured")

// Message is a plain-text notification.
type Message struct {
	From    string // RFC 5322 address, e.g. "Portfolio <onboarding@resend.dev>"
	To      string
	ReplyTo string
	Subject string
	Text    string
}

// Dispatcher sends a Message through some provider. Implementations can be
// swapped (SMTP, SendGrid, SES) without changing callers.
type Dispatcher interface {
	Send(ctx context.Context, msg Message) error
}

func (m Message) validate() error {
	if strings.TrimSpace(m.From) == "" {
		return errors.New("email: missing sender")
	}
	if strings.TrimSpace(m.To) == "" {
		return errors.New("email: missing recipient")
	}
	if strings.TrimSpace(m.Subject) == "" {
		return errors.New("email: missing subject")
	}
	return nil
}

// splitAddress parses "Name <addr>" into its parts. A bare address is
// returned with an empty name.
func splitAddress(raw string) (name, addr string, err error) {
	parsed, err := mail.ParseAddress(raw)
	if err != nil {
		return "", "", fmt.Errorf("email: invalid address %q: %w", raw, err)
	}
	return parsed.Name, parsed.Address, nil
}
