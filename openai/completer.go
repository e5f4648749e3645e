// Package openai implements recipeimport.Completer using the OpenAI Chat
// Completions API with strict JSON schema output.
package openai

import (
	"context"

	"github.com/fwojciec/recipeimport"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultModel is used when neither the request nor the Completer names one.
const DefaultModel = "gpt-4o"

// Ensure Completer implements recipeimport.Completer at compile time.
var _ recipeimport.Completer = (*Completer)(nil)

// Completer calls the OpenAI Chat Completions API. The API key is supplied
// per call; the Completer itself holds no credential.
type Completer struct {
	client  openai.Client
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

// WithBaseURL points the client at an OpenAI-compatible endpoint.
func WithBaseURL(url string) Option {
	return func(c *Completer) {
		c.baseURL = url
	}
}

// NewCompleter creates a new Completer. The underlying client never
// retries: every call is attempted exactly once.
func NewCompleter(opts ...Option) *Completer {
	c := &Completer{model: DefaultModel}
	for _, opt := range opts {
		opt(c)
	}

	reqOpts := []option.RequestOption{option.WithMaxRetries(0)}
	if c.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(c.baseURL))
	}
	c.client = openai.NewClient(reqOpts...)

	return c
}

// Complete sends req and returns the JSON content of the first choice.
// A missing choice, empty content or a refusal is reported as ok == false.
func (c *Completer) Complete(ctx context.Context, req *recipeimport.CompletionRequest, credential string) (string, bool, error) {
	if credential == "" {
		return "", false, recipeimport.Errorf(recipeimport.EINVALID, "OpenAI API key required")
	}

	params, err := BuildParams(req, c.model)
	if err != nil {
		return "", false, err
	}

	resp, err := c.client.Chat.Completions.New(ctx, params, option.WithAPIKey(credential))
	if err != nil {
		return "", false, err
	}
	if resp == nil || len(resp.Choices) == 0 {
		return "", false, nil
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", false, nil
	}
	return content, true, nil
}

// BuildParams converts a completion request into Chat Completions
// parameters. The request model takes precedence over defaultModel.
func BuildParams(req *recipeimport.CompletionRequest, defaultModel string) (openai.ChatCompletionNewParams, error) {
	model := req.Model
	if model == "" {
		model = defaultModel
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case recipeimport.RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case recipeimport.RoleUser:
			messages = append(messages, openai.UserMessage(m.Content))
		default:
			return openai.ChatCompletionNewParams{}, recipeimport.Errorf(recipeimport.EINVALID, "unsupported message role %q", m.Role)
		}
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(model),
		Messages: messages,
		ResponseFormat: openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
				JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   recipeimport.SchemaName,
					Schema: req.Schema.JSONSchema(),
					Strict: openai.Bool(true),
				},
			},
		},
		Temperature: openai.Float(req.Temperature),
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(req.MaxTokens))
	}

	return params, nil
}
