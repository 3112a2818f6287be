package llm

import (
	"context"
	"errors"
)

// Client abstracts the assistant providers behind the domain producers and
// the strategy-determination call. All calls are opaque text-in/text-out;
// response parsing happens downstream.
type Client interface {
	Invoke(ctx context.Context, req Request) (string, error)
}

// Request carries one assistant invocation.
type Request struct {
	// System holds the assistant's standing instructions (its prompt file).
	System string
	// Content is the user payload, typically the serialized profile or the
	// combined analyses.
	Content string
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("llm client not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Invoke returns ErrNotConfigured.
func (PlaceholderClient) Invoke(ctx context.Context, req Request) (string, error) {
	_ = ctx
	_ = req
	return "", ErrNotConfigured
}
