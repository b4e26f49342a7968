package llm

import (
	"context"
	"encoding/json"
)

// Provider is the boundary to the generative-text backend. Everything in
// the engine that needs generated content (questions, evaluations, tips)
// talks through this interface, so tests can substitute a deterministic
// fake.
type Provider interface {
	// Generate sends a prompt to the backend and returns its output.
	// When the request carries a Schema, the provider asks for structured
	// output and the response Content is the (validated) JSON document.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the backend's role and constraints.
	System string

	// Messages is the conversation. The engine only ever sends a single
	// user message per call.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform to.
	// When nil the response Content is the raw text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the backend.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "quiz-questions".
	Name string

	// Description tells the backend what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the backend's output.
type Response struct {
	// Content is the generated output. With a Schema this is the
	// validated JSON document; without one it is the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this call.
	Usage Usage

	// Model is the model that actually served the call.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage tracks token consumption for a single call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
