package openai_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/recipeimport"
	"github.com/fwojciec/recipeimport/extract"
	"github.com/fwojciec/recipeimport/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Completer implements recipeimport.Completer at compile time.
var _ recipeimport.Completer = (*openai.Completer)(nil)

const teaJSON = `{"title":"Tea","banner_url":"","prep_time":0,"total_time":120,"methods":["Boil water"],"ingredients":["2 cups water"]}`

// chatResponse builds a chat completion response whose first choice has
// the given content. A nil content is encoded as JSON null.
func chatResponse(t *testing.T, content *string) []byte {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o",
		"choices": []any{
			map[string]any{
				"index":         0,
				"finish_reason": "stop",
				"logprobs":      nil,
				"message": map[string]any{
					"role":    "assistant",
					"content": content,
					"refusal": nil,
				},
			},
		},
	})
	require.NoError(t, err)
	return body
}

type capturedRequest struct {
	auth string
	path string
	body map[string]any
}

func capture(r *http.Request) capturedRequest {
	c := capturedRequest{
		auth: r.Header.Get("Authorization"),
		path: r.URL.Path,
	}
	data, _ := io.ReadAll(r.Body)
	_ = json.Unmarshal(data, &c.body)
	return c
}

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func TestCompleter_Complete(t *testing.T) {
	t.Parallel()

	t.Run("sends strict schema request and returns content", func(t *testing.T) {
		t.Parallel()

		content := teaJSON
		resp := chatResponse(t, &content)
		captured := make(chan capturedRequest, 1)
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			captured <- capture(r)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(resp)
		})

		completer := openai.NewCompleter(openai.WithBaseURL(server.URL + "/"))
		req := extract.BuildRequest("", "# Tea", recipeimport.SchemaFull, extract.DefaultMaxTokens)

		got, ok, err := completer.Complete(context.Background(), req, "sk-test")

		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, teaJSON, got)

		sent := <-captured
		body := sent.body
		assert.Equal(t, "Bearer sk-test", sent.auth)
		assert.Equal(t, "/chat/completions", sent.path)
		assert.Equal(t, "gpt-4o", body["model"])
		assert.InDelta(t, 0, body["temperature"], 0.0001)
		assert.InDelta(t, 16383, body["max_completion_tokens"], 0.0001)

		messages := body["messages"].([]any)
		require.Len(t, messages, 2)
		assert.Equal(t, "system", messages[0].(map[string]any)["role"])
		assert.Equal(t, extract.SystemPrompt, messages[0].(map[string]any)["content"])
		assert.Equal(t, "user", messages[1].(map[string]any)["role"])
		assert.Equal(t, "# Tea", messages[1].(map[string]any)["content"])

		format := body["response_format"].(map[string]any)
		assert.Equal(t, "json_schema", format["type"])
		schema := format["json_schema"].(map[string]any)
		assert.Equal(t, "recipe", schema["name"])
		assert.Equal(t, true, schema["strict"])
		assert.Equal(t, false, schema["schema"].(map[string]any)["additionalProperties"])
	})

	t.Run("reports null content as not ok", func(t *testing.T) {
		t.Parallel()

		resp := chatResponse(t, nil)
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(resp)
		})

		completer := openai.NewCompleter(openai.WithBaseURL(server.URL + "/"))
		req := extract.BuildRequest("", "# Tea", recipeimport.SchemaFull, extract.DefaultMaxTokens)

		_, ok, err := completer.Complete(context.Background(), req, "sk-test")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("propagates auth errors without retrying", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
		})

		completer := openai.NewCompleter(openai.WithBaseURL(server.URL + "/"))
		req := extract.BuildRequest("", "# Tea", recipeimport.SchemaFull, extract.DefaultMaxTokens)

		_, ok, err := completer.Complete(context.Background(), req, "sk-bad")

		require.Error(t, err)
		assert.False(t, ok)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("uses model from request over default", func(t *testing.T) {
		t.Parallel()

		content := `{"methods":[]}`
		resp := chatResponse(t, &content)
		captured := make(chan capturedRequest, 1)
		server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			captured <- capture(r)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(resp)
		})

		completer := openai.NewCompleter(openai.WithBaseURL(server.URL+"/"), openai.WithModel("gpt-4o-mini"))
		req := extract.BuildRequest("gpt-4.1", "# Tea", recipeimport.SchemaMethods, extract.DefaultMaxTokens)

		_, _, err := completer.Complete(context.Background(), req, "sk-test")

		require.NoError(t, err)
		assert.Equal(t, "gpt-4.1", (<-captured).body["model"])
	})

	t.Run("requires credential", func(t *testing.T) {
		t.Parallel()

		completer := openai.NewCompleter()
		req := extract.BuildRequest("", "# Tea", recipeimport.SchemaFull, extract.DefaultMaxTokens)

		_, _, err := completer.Complete(context.Background(), req, "")

		require.Error(t, err)
		assert.Equal(t, recipeimport.EINVALID, recipeimport.ErrorCode(err))
	})
}

func TestBuildParams(t *testing.T) {
	t.Parallel()

	t.Run("falls back to default model", func(t *testing.T) {
		t.Parallel()

		req := extract.BuildRequest("", "md", recipeimport.SchemaIngredients, 100)

		params, err := openai.BuildParams(req, "gpt-4o-mini")

		require.NoError(t, err)
		assert.Equal(t, "gpt-4o-mini", string(params.Model))
		assert.Len(t, params.Messages, 2)
		require.NotNil(t, params.ResponseFormat.OfJSONSchema)
		assert.Equal(t, recipeimport.SchemaIngredients.JSONSchema(), params.ResponseFormat.OfJSONSchema.JSONSchema.Schema)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		t.Parallel()

		req := &recipeimport.CompletionRequest{
			Messages: []recipeimport.Message{{Role: "assistant", Content: "hi"}},
			Schema:   recipeimport.SchemaFull,
		}

		_, err := openai.BuildParams(req, "gpt-4o")

		require.Error(t, err)
		assert.Equal(t, recipeimport.EINVALID, recipeimport.ErrorCode(err))
	})
}
