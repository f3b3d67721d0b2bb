package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridEndpoint = "/v3/mail/send"

// SendGridSender sends mail through the SendGrid v3 API.
type SendGridSender struct {
	client *sendgrid.Client
}

// NewSendGridSender returns nil when apiKey is empty. host may be empty to
// use the public API.
func NewSendGridSender(apiKey, host string) *SendGridSender {
	if apiKey == "" {
		return nil
	}
	request := sendgrid.GetRequest(apiKey, sendGridEndpoint, host)
	request.Method = "POST"
	return &SendGridSender{client: &sendgrid.Client{Request: request}}
}

// Send implements Dispatcher.
func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	if s == nil || s.client == nil {
		return ErrNotConfigured
	}
	if err := msg.validate(); err != nil {
		return err
	}

	fromName, fromAddr, err := splitAddress(msg.From)
	if err != nil {
		return err
	}
	toName, toAddr, err := splitAddress(msg.To)
	if err != nil {
		return err
	}

	message := mail.NewSingleEmailPlainText(
		mail.NewEmail(fromName, fromAddr),
		msg.Subject,
		mail.NewEmail(toName, toAddr),
		msg.Text,
	)
	if msg.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("email: sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("email: sendgrid returned status %d", response.StatusCode)
	}
	return nil
}

var _ Dispatcher = (*SendGridSender)(nil)
