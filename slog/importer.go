package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/recipeimport"
	"github.com/google/uuid"
)

// Ensure LoggingImporter implements recipeimport.Importer.
var _ recipeimport.Importer = (*LoggingImporter)(nil)

// LoggingImporter wraps an Importer, tagging each import with an ID that
// downstream decorators pick up from the context.
type LoggingImporter struct {
	next     recipeimport.Importer
	strategy recipeimport.Strategy
	logger   *slog.Logger
}

// NewLoggingImporter creates a new LoggingImporter.
func NewLoggingImporter(next recipeimport.Importer, strategy recipeimport.Strategy, logger *slog.Logger) *LoggingImporter {
	return &LoggingImporter{next: next, strategy: strategy, logger: logger}
}

// Import assigns an import ID, delegates and logs the outcome.
func (i *LoggingImporter) Import(ctx context.Context, html, credential string) (recipe recipeimport.Recipe, found bool, err error) {
	id := ImportID(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = WithImportID(ctx, id)
	}
	defer func(begin time.Time) {
		i.logger.Info("import",
			"import_id", id,
			"strategy", string(i.strategy),
			"html_bytes", len(html),
			"found", found,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Import(ctx, html, credential)
}
