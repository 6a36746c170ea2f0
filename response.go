package llmprovider

// GenerateResponse contains the LLM provider's response.
type GenerateResponse struct {
	// Text is the generated text content
	Text string

	// Model is the model that was used (may differ from request if aliased)
	Model string

	// Usage contains token accounting for the call.
	// Nil when the provider did not report usage (not zero).
	Usage *TokenUsage

	// ToolCalls lists tool invocations requested by the model.
	// Providers that do not surface tool calls leave this nil; the field
	// exists for structural compatibility with richer providers.
	ToolCalls []ToolCall

	// ResponseMetadata contains provider-specific response data
	// Examples: finish_reason, thinking token counts, mock flags, etc.
	ResponseMetadata map[string]interface{}
}

// TokenUsage holds input/output token counts reported by a provider.
type TokenUsage struct {
	// InputTokens is the number of tokens in the input
	InputTokens int

	// OutputTokens is the number of tokens in the output
	OutputTokens int
}

// ToolCall describes a single tool invocation requested by the model.
type ToolCall struct {
	// ID is the provider-assigned call identifier
	ID string

	// Name is the tool/function name
	Name string

	// Input is the parsed argument object
	Input map[string]interface{}
}
