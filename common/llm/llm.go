package llm

import (
	"context"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Config holds text-generation client configuration.
type Config struct {
	APIKey  string // Required: API key for the provider
	BaseURL string // Optional: custom API endpoint
	Model   string // Model name (e.g., "gpt-4-turbo")
}

// Client issues single-prompt completions against the generation capability.
// Implementations make exactly one attempt per call; retries are a transport
// concern, not a client one.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	Model() string
}

// CompletionRequest describes one generation call.
type CompletionRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature *float64
	// ResponseSchema, when set, constrains the output to strict JSON matching
	// the schema. Callers still validate the decoded result.
	ResponseSchema *ResponseSchema
}

// ResponseSchema names a JSON schema for structured output.
type ResponseSchema struct {
	Name   string
	Schema any
}

// NewClient creates a Client backed by the OpenAI API.
func NewClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	return newOpenAIClient(cfg), nil
}

// GenerateSchemaFrom generates a JSON schema from an instance value.
func GenerateSchemaFrom(v any) any {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	return reflector.Reflect(v)
}
