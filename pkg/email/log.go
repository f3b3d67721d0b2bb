package email

import (
	"context"
	"log/slog"
)

// LogSender is a no-op dispatcher for local development. It logs the
// envelope and drops the message.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

// Send implements Dispatcher.
func (s *LogSender) Send(_ context.Context, msg Message) error {
	if err := msg.validate(); err != nil {
		return err
	}
	s.log.Info("email dispatch skipped (log provider)",
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
		"bytes", len(msg.Text),
	)
	return nil
}
