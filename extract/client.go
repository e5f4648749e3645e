package extract

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/fwojciec/recipeimport"
)

// SystemPrompt is the fixed instruction sent with every extraction.
const SystemPrompt = "Extract structured recipe data from a given markdown snippet"

const (
	// DefaultMaxTokens is large enough for a full recipe.
	DefaultMaxTokens = 16383

	// DefaultTemperature is the most deterministic sampling setting.
	DefaultTemperature = 0.0
)

// Client performs a single schema-constrained extraction call.
// It holds no per-call state and is safe for concurrent use.
type Client struct {
	Completer recipeimport.Completer

	// Model is passed to the provider. Empty selects the provider default.
	Model string

	// MaxTokens caps output size. Zero means DefaultMaxTokens.
	MaxTokens int
}

// Extract asks the provider to fill in the variant's schema from markdown.
//
// It returns ok == false when the provider produced no content. Content
// that is not valid JSON is a provider contract violation and is reported
// as an EMALFORMED error. Provider errors are returned unchanged.
// The call is attempted exactly once.
func (c *Client) Extract(ctx context.Context, markdown string, variant recipeimport.SchemaVariant, credential string) (recipeimport.Partial, bool, error) {
	req := BuildRequest(c.Model, markdown, variant, c.maxTokens())

	content, ok, err := c.Completer.Complete(ctx, req, credential)
	if err != nil {
		return recipeimport.Partial{}, false, err
	}
	content = strings.TrimSpace(content)
	if !ok || content == "" || content == "null" {
		return recipeimport.Partial{}, false, nil
	}

	var r recipeimport.Recipe
	if err := json.Unmarshal([]byte(content), &r); err != nil {
		return recipeimport.Partial{}, false, recipeimport.Errorf(recipeimport.EMALFORMED, "%s schema: provider returned invalid JSON: %v", variant, err)
	}

	return recipeimport.Partial{Variant: variant, Recipe: r}, true, nil
}

func (c *Client) maxTokens() int {
	if c.MaxTokens > 0 {
		return c.MaxTokens
	}
	return DefaultMaxTokens
}

// BuildRequest builds the two-message completion request for a variant.
func BuildRequest(model, markdown string, variant recipeimport.SchemaVariant, maxTokens int) *recipeimport.CompletionRequest {
	return &recipeimport.CompletionRequest{
		Model: model,
		Messages: []recipeimport.Message{
			{Role: recipeimport.RoleSystem, Content: SystemPrompt},
			{Role: recipeimport.RoleUser, Content: markdown},
		},
		Schema:      variant,
		Temperature: DefaultTemperature,
		MaxTokens:   maxTokens,
	}
}
