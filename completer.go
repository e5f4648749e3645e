package recipeimport

import "context"

// Role tags a chat message.
type Role string

// Role constants.
const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

// Message is a role-tagged chat message.
type Message struct {
	Role    Role
	Content string
}

// CompletionRequest describes a single structured-output call to a model.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	Schema      SchemaVariant
	Temperature float64
	MaxTokens   int
}

// Completer is a chat-completion provider that supports strict JSON
// schema output.
type Completer interface {
	// Complete sends the request using the given credential. It returns
	// the raw JSON text produced by the model, or ok == false when the
	// provider returned no content. Transport and authentication errors
	// are returned as-is.
	Complete(ctx context.Context, req *CompletionRequest, credential string) (content string, ok bool, err error)
}
