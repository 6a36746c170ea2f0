package lorem

import (
	"context"
	"strings"
	"time"

	loremgen "github.com/bozaro/golorem"

	llmprovider "github.com/haowjy/meridian-gemini-go"
)

// Provider is a mock LLM provider that generates lorem ipsum text.
// Used for testing and development without requiring real API keys.
type Provider struct {
	generator *loremgen.Lorem
}

// NewProvider creates a new lorem ipsum provider.
func NewProvider() *Provider {
	return &Provider{
		generator: loremgen.New(),
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() llmprovider.ProviderID {
	return llmprovider.ProviderLorem
}

// SupportsModel returns true if the model name starts with "lorem-".
// Example models: "lorem-fast", "lorem-slow", "lorem-test"
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "lorem-")
}

// getResponseDelay returns the simulated processing delay for a model.
// - lorem-fast: no delay (unit tests)
// - lorem-slow: 2 seconds
// - default: 100ms
func getResponseDelay(model string) time.Duration {
	if strings.Contains(model, "fast") {
		return 0
	}
	if strings.Contains(model, "slow") {
		return 2 * time.Second
	}
	return 100 * time.Millisecond
}

// GenerateResponse generates a complete lorem ipsum response after a
// model-dependent delay. This simulates a blocking API call to a real
// LLM provider.
func (p *Provider) GenerateResponse(ctx context.Context, req *llmprovider.GenerateRequest, opts *llmprovider.ExecutionOptions) (*llmprovider.GenerateResponse, error) {
	model := req.Model
	if opts != nil && opts.Model != "" {
		model = opts.Model
	}

	// Validate model
	if !p.SupportsModel(model) {
		return nil, &llmprovider.ModelError{
			Model:    model,
			Provider: p.Name().String(),
			Reason:   "model not supported by Lorem provider (must start with 'lorem-')",
			Err:      llmprovider.ErrInvalidModel,
		}
	}

	// Extract parameters
	params := req.Params
	if params == nil {
		params = &llmprovider.RequestParams{}
	}
	maxTokens := params.GetMaxTokens(256)
	if opts != nil && opts.MaxTokens != nil {
		maxTokens = *opts.MaxTokens
	}

	// Simulate processing delay
	if delay := getResponseDelay(model); delay > 0 {
		select {
		case <-time.After(delay):
			// Continue after delay
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	// Generate lorem ipsum text
	// Estimate: 1 token ≈ 4 characters
	targetChars := maxTokens * 4
	text := p.generateText(targetChars)

	// Estimate token counts (rough approximation)
	inputTokens := p.estimateTokens(req.Messages)
	outputTokens := len(strings.Fields(text)) // Word count as proxy

	return &llmprovider.GenerateResponse{
		Text:  text,
		Model: model,
		Usage: &llmprovider.TokenUsage{
			InputTokens:  inputTokens,
			OutputTokens: outputTokens,
		},
		ResponseMetadata: map[string]interface{}{
			"mock":     true,
			"provider": "lorem",
		},
	}, nil
}

// generateText generates lorem ipsum text with approximately targetChars characters.
func (p *Provider) generateText(targetChars int) string {
	var sb strings.Builder
	for sb.Len() < targetChars {
		paragraph := p.generator.Paragraph(3, 5)
		sb.WriteString(paragraph)
		sb.WriteString("\n\n")
	}
	return strings.TrimSpace(sb.String())
}

// estimateTokens estimates input tokens from message word counts.
func (p *Provider) estimateTokens(messages []llmprovider.Message) int {
	totalWords := 0
	for _, msg := range messages {
		for _, block := range msg.Blocks {
			if block.TextContent != nil {
				totalWords += len(strings.Fields(*block.TextContent))
			}
		}
	}
	return totalWords
}
