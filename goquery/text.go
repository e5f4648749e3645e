package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/recipeimport"
)

// blockSelector matches elements that end a line of text.
const blockSelector = "p, div, br, li, tr, h1, h2, h3, h4, h5, h6, section, article, header, footer, blockquote, pre, dt, dd"

// Ensure TextConverter implements recipeimport.Converter at compile time.
var _ recipeimport.Converter = (*TextConverter)(nil)

// TextConverter renders HTML as plain text, one block per line. It is a
// degraded stand-in for a markdown converter.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Convert returns the visible text of html with blank lines dropped.
func (c *TextConverter) Convert(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", recipeimport.Errorf(recipeimport.EINVALID, "failed to parse HTML: %v", err)
	}
	doc.Find(DefaultRemoveSelector).Remove()
	doc.Find(blockSelector).AfterHtml("\n")

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}
