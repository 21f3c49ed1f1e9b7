package embedding

import (
	"context"
	"errors"
)

// Client abstracts the external text-to-vector function. Vectors returned for
// one batch share a fixed dimensionality.
type Client interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("embedding client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Embed returns ErrNotConfigured.
func (PlaceholderClient) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	_ = ctx
	_ = texts
	return nil, ErrNotConfigured
}
