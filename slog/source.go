// Package slog provides logging decorators for inkling interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/inkling"
)

// Ensure LoggingSource implements inkling.DocumentSource.
var _ inkling.DocumentSource = (*LoggingSource)(nil)

// LoggingSource wraps a DocumentSource with debug logging.
type LoggingSource struct {
	next   inkling.DocumentSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next inkling.DocumentSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Export delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Export(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("document export",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Export(ctx)
}
