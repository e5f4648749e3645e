package mock

import (
	"context"

	"github.com/fwojciec/recipeimport"
)

var _ recipeimport.Importer = (*Importer)(nil)

// Importer is a mock implementation of recipeimport.Importer.
type Importer struct {
	ImportFn func(ctx context.Context, html, credential string) (recipeimport.Recipe, bool, error)
}

func (i *Importer) Import(ctx context.Context, html, credential string) (recipeimport.Recipe, bool, error) {
	return i.ImportFn(ctx, html, credential)
}
