package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/inkling"
)

// Ensure LoggingEmailSender implements inkling.EmailSender.
var _ inkling.EmailSender = (*LoggingEmailSender)(nil)

// LoggingEmailSender wraps an EmailSender with per-message logging.
type LoggingEmailSender struct {
	next   inkling.EmailSender
	logger *slog.Logger
}

// NewLoggingEmailSender creates a new LoggingEmailSender.
func NewLoggingEmailSender(next inkling.EmailSender, logger *slog.Logger) *LoggingEmailSender {
	return &LoggingEmailSender{next: next, logger: logger}
}

// Send delegates to the wrapped sender and logs the operation.
func (s *LoggingEmailSender) Send(ctx context.Context, email *inkling.Email) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("email send",
			"to", email.To,
			"subject", email.Subject,
			"inline", len(email.Inline),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Send(ctx, email)
}
