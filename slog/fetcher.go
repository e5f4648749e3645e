package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/recipeimport"
)

// Ensure LoggingFetcher implements recipeimport.Fetcher.
var _ recipeimport.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs each page fetch under the import
// it belongs to, so a --url import can be followed from fetch to
// completion.
type LoggingFetcher struct {
	next   recipeimport.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next recipeimport.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the page size. Failed
// fetches also log the application error code.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("page fetch",
			"import_id", ImportID(ctx),
			"url", url,
			"html_bytes", len(html),
			"code", recipeimport.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
