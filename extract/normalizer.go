// Package extract turns recipe page HTML into a structured recipe. It
// normalizes HTML into markdown, asks a provider to fill in a schema, and
// offers two interchangeable strategies for doing so.
package extract

import (
	"html"
	"strings"

	"github.com/fwojciec/recipeimport"
)

// Ensure Normalizer implements recipeimport.Normalizer at compile time.
var _ recipeimport.Normalizer = (*Normalizer)(nil)

// Normalizer converts raw page HTML into markdown model input.
//
// The pipeline is: Sanitizer (drop scripts, styles) -> optional Extractor
// (drop page boilerplate) -> Converter (HTML to markdown). Any stage that
// fails is skipped. If the sanitizer fails and no converter produces
// output, Normalize returns "" rather than raw markup.
type Normalizer struct {
	Sanitizer recipeimport.Sanitizer
	Extractor recipeimport.Extractor
	Converter recipeimport.Converter

	// Fallback is used when Converter fails or returns nothing.
	Fallback recipeimport.Converter
}

// Normalize returns markdown for the given HTML. It never fails.
func (n *Normalizer) Normalize(rawHTML string) string {
	if strings.TrimSpace(rawHTML) == "" {
		return ""
	}

	clean, sanitized := rawHTML, n.Sanitizer == nil
	if n.Sanitizer != nil {
		if s, err := n.Sanitizer.Sanitize(rawHTML); err == nil {
			clean, sanitized = s, true
		}
	}

	body := clean
	if n.Extractor != nil {
		if res, err := n.Extractor.Extract(clean); err == nil && res != nil && strings.TrimSpace(res.ContentHTML) != "" {
			body = leadHTML(res) + res.ContentHTML
		}
	}

	if n.Converter != nil {
		if md, err := n.Converter.Convert(body); err == nil && strings.TrimSpace(md) != "" {
			return md
		}
	}
	if n.Fallback != nil {
		if text, err := n.Fallback.Convert(body); err == nil && strings.TrimSpace(text) != "" {
			return text
		}
	}
	// Unsanitized markup may still carry script text.
	if !sanitized {
		return ""
	}
	return body
}

// leadHTML renders the page title and lead image found in metadata so they
// survive boilerplate removal.
func leadHTML(res *recipeimport.ExtractResult) string {
	var sb strings.Builder
	if res.Title != "" {
		sb.WriteString("<h1>" + html.EscapeString(res.Title) + "</h1>\n")
	}
	if res.Image != "" {
		sb.WriteString(`<p><img src="` + html.EscapeString(res.Image) + `" alt="banner"></p>` + "\n")
	}
	return sb.String()
}
