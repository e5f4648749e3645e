package extract_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/recipeimport"
	"github.com/fwojciec/recipeimport/extract"
	"github.com/fwojciec/recipeimport/goquery"
	"github.com/fwojciec/recipeimport/htmltomarkdown"
	"github.com/fwojciec/recipeimport/mock"
	"github.com/stretchr/testify/assert"
)

func newNormalizer() *extract.Normalizer {
	return &extract.Normalizer{
		Sanitizer: goquery.NewSanitizer(),
		Converter: htmltomarkdown.NewConverter(),
		Fallback:  goquery.NewTextConverter(),
	}
}

func TestNormalizer_Normalize(t *testing.T) {
	t.Parallel()

	t.Run("never includes script text", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			`<html><body><h1>Tea</h1><script>var leaked = "SCRIPT-TEXT";</script></body></html>`,
			`<script>SCRIPT-TEXT</script><p>Stir</p>`,
			`<p>Stir<script type="application/ld+json">{"name":"SCRIPT-TEXT"}</script>`,
			`<html><head><script src="a.js">SCRIPT-TEXT</script></head><body>Body</body></html>`,
			`<div><script>SCRIPT-TEXT</div><p>unterminated`,
		}

		n := newNormalizer()
		for _, html := range inputs {
			assert.NotContains(t, n.Normalize(html), "SCRIPT-TEXT", "input: %s", html)
		}
	})

	t.Run("converts recipe page to markdown", func(t *testing.T) {
		t.Parallel()

		md := newNormalizer().Normalize(`<html><body><h1>Tea</h1><p>2 cups water</p></body></html>`)

		assert.Contains(t, md, "# Tea")
		assert.Contains(t, md, "2 cups water")
	})

	t.Run("returns empty for empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, newNormalizer().Normalize("   "))
	})

	t.Run("tolerates malformed HTML", func(t *testing.T) {
		t.Parallel()

		md := newNormalizer().Normalize(`<h1>Tea<p>2 cups <b>water</i></ul></div>`)

		assert.Contains(t, md, "Tea")
		assert.Contains(t, md, "water")
	})

	t.Run("prepends extracted title and image", func(t *testing.T) {
		t.Parallel()

		n := newNormalizer()
		n.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*recipeimport.ExtractResult, error) {
				return &recipeimport.ExtractResult{
					Title:       "Perfect Tea",
					Image:       "https://example.com/tea.jpg",
					ContentHTML: "<p>2 cups water</p>",
				}, nil
			},
		}

		md := n.Normalize(`<html><body><nav>Menu</nav><p>2 cups water</p></body></html>`)

		assert.Contains(t, md, "# Perfect Tea")
		assert.Contains(t, md, "https://example.com/tea.jpg")
		assert.Contains(t, md, "2 cups water")
		assert.NotContains(t, md, "Menu")
	})

	t.Run("ignores extractor failure", func(t *testing.T) {
		t.Parallel()

		n := newNormalizer()
		n.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*recipeimport.ExtractResult, error) {
				return nil, errors.New("extraction failed")
			},
		}

		md := n.Normalize(`<p>2 cups water</p>`)

		assert.Contains(t, md, "2 cups water")
	})

	t.Run("ignores empty extractor content", func(t *testing.T) {
		t.Parallel()

		n := newNormalizer()
		n.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*recipeimport.ExtractResult, error) {
				return &recipeimport.ExtractResult{Title: "Only a title"}, nil
			},
		}

		md := n.Normalize(`<p>2 cups water</p>`)

		assert.Contains(t, md, "2 cups water")
		assert.NotContains(t, md, "Only a title")
	})

	t.Run("uses raw HTML when sanitizer fails", func(t *testing.T) {
		t.Parallel()

		var converted string
		n := &extract.Normalizer{
			Sanitizer: &mock.Sanitizer{
				SanitizeFn: func(html string) (string, error) {
					return "", errors.New("parse error")
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					converted = html
					return "markdown", nil
				},
			},
		}

		md := n.Normalize("<p>x</p>")

		assert.Equal(t, "markdown", md)
		assert.Equal(t, "<p>x</p>", converted)
	})

	t.Run("falls back to text when converter fails", func(t *testing.T) {
		t.Parallel()

		n := newNormalizer()
		n.Converter = &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("conversion failed")
			},
		}

		md := n.Normalize(`<h1>Tea</h1><p>2 cups water</p>`)

		assert.Equal(t, "Tea\n2 cups water", md)
	})

	t.Run("returns sanitized HTML when every converter fails", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("conversion failed")
			},
		}
		n := &extract.Normalizer{
			Sanitizer: goquery.NewSanitizer(),
			Converter: failing,
			Fallback:  failing,
		}

		out := n.Normalize(`<p>Tea</p><script>SCRIPT-TEXT</script>`)

		assert.NotEmpty(t, strings.TrimSpace(out))
		assert.Contains(t, out, "Tea")
		assert.NotContains(t, out, "SCRIPT-TEXT")
	})

	t.Run("returns nothing when sanitizer and every converter fail", func(t *testing.T) {
		t.Parallel()

		failing := &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "", errors.New("conversion failed")
			},
		}
		n := &extract.Normalizer{
			Sanitizer: &mock.Sanitizer{
				SanitizeFn: func(html string) (string, error) {
					return "", errors.New("parse error")
				},
			},
			Converter: failing,
			Fallback:  failing,
		}

		out := n.Normalize(`<p>Tea</p><script>SCRIPT-TEXT</script>`)

		assert.Empty(t, out)
	})
}
