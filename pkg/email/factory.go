package email

import (
	"context"
	"fmt"
	"log/slog"

	"portfolio-backend/config"
)

// NewDispatcher selects the provider named by cfg.EmailProvider.
func NewDispatcher(ctx context.Context, cfg *config.Config, log *slog.Logger) (Dispatcher, error) {
	switch cfg.EmailProvider {
	case "smtp":
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword), nil
	case "sendgrid":
		sender := NewSendGridSender(cfg.SendGridAPIKey, cfg.SendGridHost)
		if sender == nil {
			return nil, fmt.Errorf("email: sendgrid selected but SENDGRID_API_KEY is empty: %w", ErrNotConfigured)
		}
		return sender, nil
	case "ses":
		return NewSESSenderFromEnv(ctx, cfg.AWSRegion)
	case "log", "":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("email: unknown provider %q", cfg.EmailProvider)
	}
}
