package llmprovider

import (
	"context"
)

// Provider defines the interface that all LLM providers must implement.
// This abstraction allows supporting multiple providers (Gemini, Lorem, etc.)
// while maintaining a consistent interface.
//
// Types used by this interface:
//   - GenerateRequest, Message: defined in request.go
//   - GenerateResponse: defined in response.go
//   - ExecutionOptions: defined in params.go
type Provider interface {
	// GenerateResponse generates a complete response from the LLM provider (blocking).
	// It takes conversation context (messages) plus per-call execution options
	// and returns the generated text with token accounting.
	//
	// opts may be nil; providers fall back to request-level parameters and
	// environment-sourced credentials.
	GenerateResponse(ctx context.Context, req *GenerateRequest, opts *ExecutionOptions) (*GenerateResponse, error)

	// Name returns the provider name (e.g., "gemini", "lorem")
	Name() ProviderID

	// SupportsModel returns true if the provider supports the given model.
	SupportsModel(model string) bool
}
