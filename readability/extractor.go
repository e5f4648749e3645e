// Package readability strips boilerplate from recipe pages using
// go-readability.
package readability

import (
	nurl "net/url"
	"strings"

	"github.com/fwojciec/recipeimport"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements recipeimport.Extractor at compile time.
var _ recipeimport.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main recipe content.
type Extractor struct {
	pageURL *nurl.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL sets the URL the page was served from so relative image and
// link URLs resolve to absolute ones. Invalid URLs are ignored.
func WithPageURL(rawURL string) Option {
	return func(e *Extractor) {
		if u, err := nurl.Parse(rawURL); err == nil && u.IsAbs() {
			e.pageURL = u
		}
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content with the page
// title and lead image.
func (e *Extractor) Extract(rawHTML string) (*recipeimport.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, recipeimport.Errorf(recipeimport.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, err
	}

	return &recipeimport.ExtractResult{
		Title:       article.Title,
		Image:       article.Image,
		ContentHTML: article.Content,
	}, nil
}
