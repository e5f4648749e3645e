package mock

import (
	"context"

	"github.com/fwojciec/recipeimport"
)

var _ recipeimport.Completer = (*Completer)(nil)

// Completer is a mock implementation of recipeimport.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, req *recipeimport.CompletionRequest, credential string) (string, bool, error)
}

func (c *Completer) Complete(ctx context.Context, req *recipeimport.CompletionRequest, credential string) (string, bool, error) {
	return c.CompleteFn(ctx, req, credential)
}
