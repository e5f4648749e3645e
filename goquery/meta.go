package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/recipeimport"
)

// Ensure MetaExtractor implements recipeimport.Extractor at compile time.
var _ recipeimport.Extractor = (*MetaExtractor)(nil)

// MetaExtractor keeps the whole page body and reads the title and lead
// image from page metadata (Open Graph, Twitter cards, <title>). Unlike the
// boilerplate extractors it never drops content.
type MetaExtractor struct{}

// NewMetaExtractor creates a new MetaExtractor.
func NewMetaExtractor() *MetaExtractor {
	return &MetaExtractor{}
}

// Extract returns the body HTML together with metadata title and image.
func (e *MetaExtractor) Extract(html string) (*recipeimport.ExtractResult, error) {
	if strings.TrimSpace(html) == "" {
		return nil, recipeimport.Errorf(recipeimport.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, recipeimport.Errorf(recipeimport.EINVALID, "failed to parse HTML: %v", err)
	}

	body, err := doc.Find("body").First().Html()
	if err != nil {
		return nil, err
	}

	return &recipeimport.ExtractResult{
		Title: firstNonEmpty(
			metaContent(doc, "meta[property='og:title']"),
			metaContent(doc, "meta[name='twitter:title']"),
			strings.TrimSpace(doc.Find("title").First().Text()),
		),
		Image: firstNonEmpty(
			metaContent(doc, "meta[property='og:image']"),
			metaContent(doc, "meta[name='twitter:image']"),
			attr(doc, "link[rel='image_src']", "href"),
		),
		ContentHTML: body,
	}, nil
}

// metaContent returns the trimmed content attribute of the first match.
func metaContent(doc *goquery.Document, selector string) string {
	return attr(doc, selector, "content")
}

func attr(doc *goquery.Document, selector, name string) string {
	v, _ := doc.Find(selector).First().Attr(name)
	return strings.TrimSpace(v)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
