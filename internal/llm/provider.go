package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts the generative-text service. Both question batches
// and coaching requests go through Generate.
type Provider interface {
	// Generate sends a prompt and returns the response. When the
	// request carries a Schema, the provider uses its native structured
	// output mechanism and Content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes one call to the service.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. prepdrill only ever sends a single
	// user message, but the slice keeps providers general.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must satisfy.
	// Nil means free text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0, 1]; zero means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	// Name is kebab-case, e.g. "question-batch".
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is validated JSON when the request had a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
