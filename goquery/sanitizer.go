// Package goquery implements HTML clean-up for recipe pages using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/recipeimport"
)

// DefaultRemoveSelector matches elements that never carry recipe content.
const DefaultRemoveSelector = "script, noscript, style, template, iframe, svg"

// Ensure Sanitizer implements recipeimport.Sanitizer at compile time.
var _ recipeimport.Sanitizer = (*Sanitizer)(nil)

// Sanitizer removes non-content elements from HTML.
type Sanitizer struct {
	selector string
}

// Option configures a Sanitizer.
type Option func(*Sanitizer)

// WithRemoveSelector replaces the selector of elements to remove.
// Defaults to DefaultRemoveSelector.
func WithRemoveSelector(selector string) Option {
	return func(s *Sanitizer) {
		s.selector = selector
	}
}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer(opts ...Option) *Sanitizer {
	s := &Sanitizer{selector: DefaultRemoveSelector}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sanitize returns html with every element matching the selector removed.
// Malformed markup is repaired by the HTML5 parser rather than rejected.
func (s *Sanitizer) Sanitize(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", recipeimport.Errorf(recipeimport.EINVALID, "failed to parse HTML: %v", err)
	}

	if s.selector != "" {
		doc.Find(s.selector).Remove()
	}

	return doc.Html()
}
