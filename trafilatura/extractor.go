// Package trafilatura strips boilerplate from recipe pages using
// go-trafilatura.
package trafilatura

import (
	"bytes"
	nurl "net/url"
	"strings"

	"github.com/fwojciec/recipeimport"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements recipeimport.Extractor at compile time.
var _ recipeimport.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main recipe content.
type Extractor struct {
	pageURL *nurl.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL sets the URL the page was served from. Invalid URLs are ignored.
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

	// Recipe pages are mostly lists; favor recall so ingredient lists survive.
	opts := trafilatura.Options{
		EnableFallback: true,
		Focus:          trafilatura.FavorRecall,
		IncludeImages:  true,
		OriginalURL:    e.pageURL,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &recipeimport.ExtractResult{
		Title:       result.Metadata.Title,
		Image:       result.Metadata.Image,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
