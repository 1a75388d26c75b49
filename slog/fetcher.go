package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/inkling"
)

// Ensure LoggingAssetFetcher implements inkling.AssetFetcher.
var _ inkling.AssetFetcher = (*LoggingAssetFetcher)(nil)

// LoggingAssetFetcher wraps an AssetFetcher with per-asset logging.
type LoggingAssetFetcher struct {
	next   inkling.AssetFetcher
	logger *slog.Logger
}

// NewLoggingAssetFetcher creates a new LoggingAssetFetcher.
func NewLoggingAssetFetcher(next inkling.AssetFetcher, logger *slog.Logger) *LoggingAssetFetcher {
	return &LoggingAssetFetcher{next: next, logger: logger}
}

// FetchAsset delegates to the wrapped fetcher and logs the operation.
func (f *LoggingAssetFetcher) FetchAsset(ctx context.Context, url string) (data []byte, mime string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("asset fetch",
			"url", url,
			"bytes", len(data),
			"mime", mime,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.FetchAsset(ctx, url)
}
