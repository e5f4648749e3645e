package mock

import "github.com/fwojciec/recipeimport"

var _ recipeimport.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of recipeimport.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*recipeimport.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*recipeimport.ExtractResult, error) {
	return e.ExtractFn(html)
}
