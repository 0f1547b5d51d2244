package llm

import "context"

// GenerateRequest holds the parameters for an LLM generation call.
type GenerateRequest struct {
	Task         TaskType
	RequestID    string
	APIKey       string
	SystemPrompt string
	UserPrompt   string

	// ResponseMIMEType and ResponseSchema constrain the output format.
	// Both are optional.
	ResponseMIMEType string
	ResponseSchema   *Schema

	Temperature *float64 // nil uses the configured default
}

// GenerateResponse holds the result of an LLM generation call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient provides access to a language model for text generation.
type LLMClient interface {
	// Generate sends a prompt and returns the raw text response.
	// It performs exactly one call to the underlying service.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}
