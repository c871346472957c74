// Package providers implements LLM clients for the enhancement pipeline and
// a config-driven registry to hold them.
package providers

import (
	"context"
	"errors"
)

// PlaceholderAPIKey is the well-known placeholder credential value. A key
// that is empty or equal to this literal means the LLM path is disabled.
const PlaceholderAPIKey = "your-api-key-here"

// CredentialConfigured reports whether an API key is real: non-empty and not
// the placeholder literal.
func CredentialConfigured(apiKey string) bool {
	return apiKey != "" && apiKey != PlaceholderAPIKey
}

// ErrNotConfigured is returned by clients whose credential is missing or
// still the placeholder. The orchestrator treats it like any other upstream
// failure and falls back to the local corrector.
var ErrNotConfigured = errors.New("llm client not configured")

// LLMClient is the interface for chat/completion requests.
type LLMClient interface {
	// Chat sends a single prompt and returns the raw text reply.
	Chat(ctx context.Context, req *ChatRequest) (*ChatResult, error)

	// Name returns the client identifier (e.g. "gemini").
	Name() string

	// Configured reports whether the client holds a real credential.
	Configured() bool
}

// ChatRequest is a request to an LLM.
type ChatRequest struct {
	// Prompt is the full instruction block to send.
	Prompt string

	// Model overrides the client's preferred model if set.
	Model string

	// RequestID is generated when empty.
	RequestID string
}

// ChatResult is the response from an LLM call.
type ChatResult struct {
	// Content is the raw text reply, before fence stripping.
	Content string `json:"content"`

	// Provider info
	Provider  string `json:"provider"`
	ModelUsed string `json:"model_used"`

	// Request tracking
	RequestID string `json:"request_id"`
	Attempts  int    `json:"attempts"`
}
