// Package gemini implements recipeimport services using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/recipeimport"
	"google.golang.org/genai"
)

// DefaultModel is used when neither the request nor the Completer names one.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements recipeimport.Completer at compile time.
var _ recipeimport.Completer = (*Completer)(nil)

// Completer implements recipeimport.Completer using Gemini structured
// output. A client is created per call from the caller's API key.
type Completer struct {
	model   string
	baseURL string
}

// Option configures a Completer.
type Option func(*Completer)

// WithModel sets the default model.
func WithModel(model string) Option {
	return func(c *Completer) {
		c.model = model
	}
}

// WithBaseURL overrides the Gemini API endpoint.
func WithBaseURL(url string) Option {
	return func(c *Completer) {
		c.baseURL = url
	}
}

// NewCompleter creates a new Completer.
func NewCompleter(opts ...Option) *Completer {
	c := &Completer{model: DefaultModel}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Complete sends req and returns the JSON text of the first candidate.
// An empty response is reported as ok == false.
func (c *Completer) Complete(ctx context.Context, req *recipeimport.CompletionRequest, credential string) (string, bool, error) {
	if credential == "" {
		return "", false, recipeimport.Errorf(recipeimport.EINVALID, "Gemini API key required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      credential,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: c.baseURL},
	})
	if err != nil {
		return "", false, err
	}

	model := req.Model
	if model == "" {
		model = c.model
	}

	result, err := client.Models.GenerateContent(ctx, model,
		[]*genai.Content{genai.NewContentFromText(BuildUserPrompt(req), genai.RoleUser)},
		BuildConfig(req),
	)
	if err != nil {
		return "", false, err
	}
	if result == nil {
		return "", false, nil
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", false, nil
	}
	return text, true, nil
}

// BuildConfig returns the GenerateContentConfig for a completion request.
// System messages become the system instruction.
func BuildConfig(req *recipeimport.CompletionRequest) *genai.GenerateContentConfig {
	temp := float32(req.Temperature)
	config := &genai.GenerateContentConfig{
		Temperature:        &temp,
		ResponseMIMEType:   "application/json",
		ResponseJsonSchema: req.Schema.JSONSchema(),
	}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}

	var parts []*genai.Part
	for _, m := range req.Messages {
		if m.Role == recipeimport.RoleSystem {
			parts = append(parts, &genai.Part{Text: m.Content})
		}
	}
	if len(parts) > 0 {
		config.SystemInstruction = &genai.Content{Parts: parts}
	}

	return config
}

// BuildUserPrompt joins the user messages of a request.
func BuildUserPrompt(req *recipeimport.CompletionRequest) string {
	var texts []string
	for _, m := range req.Messages {
		if m.Role == recipeimport.RoleUser {
			texts = append(texts, m.Content)
		}
	}
	return strings.Join(texts, "\n\n")
}
