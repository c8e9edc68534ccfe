package llm

import (
	"context"
	"encoding/json"
	"errors"
)

// Message is a single chat message sent to a provider.
type Message struct {
	Role    string
	Content string
}

// Client abstracts LLM providers for skill extraction and embeddings.
type Client interface {
	// Complete sends a chat prompt and returns the raw JSON object the model produced.
	Complete(ctx context.Context, messages []Message) (json.RawMessage, error)
	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float64, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm provider not configured")

// PlaceholderClient is a stub implementation used when no provider is wired.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, messages []Message) (json.RawMessage, error) {
	_ = ctx
	_ = messages
	return nil, ErrNotConfigured
}

// Embed returns ErrNotConfigured.
func (PlaceholderClient) Embed(ctx context.Context, text string) ([]float64, error) {
	_ = ctx
	_ = text
	return nil, ErrNotConfigured
}
