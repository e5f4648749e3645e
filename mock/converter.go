package mock

import "github.com/fwojciec/recipeimport"

var _ recipeimport.Converter = (*Converter)(nil)

// Converter is a mock implementation of recipeimport.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ recipeimport.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of recipeimport.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) (string, error)
}

func (s *Sanitizer) Sanitize(html string) (string, error) {
	return s.SanitizeFn(html)
}

var _ recipeimport.Normalizer = (*Normalizer)(nil)

// Normalizer is a mock implementation of recipeimport.Normalizer.
type Normalizer struct {
	NormalizeFn func(html string) string
}

func (n *Normalizer) Normalize(html string) string {
	return n.NormalizeFn(html)
}
