package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/recipeimport"
)

// Ensure LoggingCompleter implements recipeimport.Completer.
var _ recipeimport.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging of every call.
// The credential is never logged.
type LoggingCompleter struct {
	next   recipeimport.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next recipeimport.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the outcome.
func (c *LoggingCompleter) Complete(ctx context.Context, req *recipeimport.CompletionRequest, credential string) (content string, ok bool, err error) {
	input := userContent(req)
	defer func(begin time.Time) {
		c.logger.Info("completion",
			"import_id", ImportID(ctx),
			"schema", string(req.Schema),
			"model", req.Model,
			"input_bytes", len(input),
			"input_hash", strconv.FormatUint(xxhash.Sum64String(input), 16),
			"output_bytes", len(content),
			"ok", ok,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, req, credential)
}

func userContent(req *recipeimport.CompletionRequest) string {
	var s string
	for _, m := range req.Messages {
		if m.Role == recipeimport.RoleUser {
			s += m.Content
		}
	}
	return s
}
