package recipeimport

import (
	"fmt"
	"math"
	"strings"
)

// FormatRecipe renders a recipe as markdown for display.
// Empty sections are omitted.
func FormatRecipe(r Recipe) string {
	var sb strings.Builder

	title := r.Title
	if title == "" {
		title = "Untitled recipe"
	}
	sb.WriteString("# " + title + "\n")

	if r.BannerURL != "" {
		fmt.Fprintf(&sb, "\n![%s](%s)\n", title, r.BannerURL)
	}

	fmt.Fprintf(&sb, "\nPrep time: %s\nTotal time: %s\n", FormatDuration(r.PrepTime), FormatDuration(r.TotalTime))

	if len(r.Ingredients) > 0 {
		sb.WriteString("\n## Ingredients\n\n")
		for _, ing := range r.Ingredients {
			sb.WriteString("- " + ing + "\n")
		}
	}

	if len(r.Methods) > 0 {
		sb.WriteString("\n## Method\n\n")
		for i, step := range r.Methods {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, step)
		}
	}

	return sb.String()
}

// FormatDuration renders a number of seconds as e.g. "1h 5m" or "45s".
// Fractions are rounded to the nearest second; negative values render as "0s".
func FormatDuration(seconds float64) string {
	total := int64(math.Round(seconds))
	if total <= 0 {
		return "0s"
	}

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	var parts []string
	if h > 0 {
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	if m > 0 {
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	if s > 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return strings.Join(parts, " ")
}
