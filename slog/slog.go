// Package slog provides logging decorators for recipeimport interfaces
// built on log/slog.
package slog

import "context"

type contextKey struct{}

// WithImportID returns a copy of ctx carrying the given import ID.
func WithImportID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// ImportID returns the import ID stored in ctx, or "" if there is none.
func ImportID(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
