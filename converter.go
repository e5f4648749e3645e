package recipeimport

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	Convert(html string) (string, error)
}

// Sanitizer removes elements that carry no recipe content, such as
// scripts and styles, from HTML.
type Sanitizer interface {
	Sanitize(html string) (string, error)
}

// Normalizer turns raw page HTML into markdown suitable as model input.
type Normalizer interface {
	// Normalize never fails. Malformed input yields degraded output.
	Normalize(html string) string
}
