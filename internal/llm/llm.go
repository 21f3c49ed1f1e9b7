package llm

import (
	"context"
	"errors"
)

// Client abstracts generative model providers. The returned text may be
// wrapped in Markdown code fencing; callers are expected to strip it.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ErrTimeout indicates the generative call exceeded its deadline.
var ErrTimeout = errors.New("llm request timeout")

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Generate returns ErrNotConfigured.
func (PlaceholderClient) Generate(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}
