// Package gemini implements the llmprovider.Provider interface for Google's
// Gemini API, delegating transport to the google.golang.org/genai SDK.
package gemini

import (
	"context"
	"errors"
	"os"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/genai"

	llmprovider "github.com/haowjy/meridian-gemini-go"
)

// Version is the semantic version of this adapter.
const Version = "0.2.0"

const (
	// defaultModel is used when neither the request nor the execution
	// options name a model.
	defaultModel = "gemini-1.5-pro"

	// modelPrefix is the Gemini model family prefix (case-sensitive).
	modelPrefix = "gemini"

	// apiKeyPattern matches Google API keys: "AIza" followed by 35
	// characters of [A-Za-z0-9_-], 39 characters total. Registered with
	// the redactor so credential-shaped substrings never leak through
	// error messages.
	apiKeyPattern = `AIza[0-9A-Za-z_-]{35}`
)

// apiKeyShape is the anchored form used for the pre-flight sanity check.
// This is not authentication - a well-shaped key can still be rejected by
// the remote API.
var apiKeyShape = regexp.MustCompile(`^` + apiKeyPattern + `$`)

// clientFactory builds a generation client for a resolved credential.
// Swapped out in tests to avoid network access.
type clientFactory func(ctx context.Context, apiKey string) (generationClient, error)

// Provider implements the llmprovider.Provider interface for Gemini models.
// Instances are stateless apart from their redactor and are safe for
// concurrent use.
type Provider struct {
	redactor  *llmprovider.Redactor
	newClient clientFactory
}

// New creates a Gemini provider with its own redactor.
// Credentials are resolved per call from ExecutionOptions.APIKey or the
// GEMINI_API_KEY environment variable (GOOGLE_API_KEY as an alias).
func New() *Provider {
	return NewWithRedactor(llmprovider.NewRedactor())
}

// NewWithRedactor creates a Gemini provider using a redactor owned by the
// host application. The Gemini key pattern is registered on it here;
// registration is idempotent, so sharing one redactor across providers and
// repeated construction are both fine.
func NewWithRedactor(redactor *llmprovider.Redactor) *Provider {
	if redactor == nil {
		redactor = llmprovider.NewRedactor()
	}
	// The pattern is a compile-time constant; registration cannot fail.
	_ = redactor.RegisterPattern(apiKeyPattern)

	return &Provider{
		redactor:  redactor,
		newClient: newGenaiClient,
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() llmprovider.ProviderID {
	return llmprovider.ProviderGemini
}

// SupportsModel returns true if this provider supports the given model.
// Gemini models start with "gemini" (e.g., "gemini-1.5-pro").
func (p *Provider) SupportsModel(model string) bool {
	if model == "" {
		return false
	}
	return strings.HasPrefix(model, modelPrefix)
}

// GenerateResponse generates a response from Gemini.
//
// The call makes at most one outbound request: a chat send when the
// conversation holds more than one turn, a single-shot generation otherwise.
// Credential failures surface before any network access. Remote failures are
// redacted and tagged with a correlation ID before being returned.
func (p *Provider) GenerateResponse(ctx context.Context, req *llmprovider.GenerateRequest, opts *llmprovider.ExecutionOptions) (*llmprovider.GenerateResponse, error) {
	apiKey := resolveAPIKey(opts)
	if apiKey == "" {
		return nil, &llmprovider.CredentialError{
			Provider: p.Name().String(),
			Reason:   "no API key in options and neither GEMINI_API_KEY nor GOOGLE_API_KEY is set",
			Err:      llmprovider.ErrMissingAPIKey,
		}
	}
	if !apiKeyShape.MatchString(apiKey) {
		return nil, &llmprovider.CredentialError{
			Provider: p.Name().String(),
			Reason:   "API key does not match the expected shape (AIza + 35 characters)",
			Err:      llmprovider.ErrInvalidAPIKey,
		}
	}

	model := resolveModel(req, opts)
	config := buildGenerateContentConfig(req.Params, opts)

	preamble, turns, lastPrompt := partitionMessages(req.Messages)
	if preamble != "" {
		config.SystemInstruction = genai.NewContentFromText(preamble, genai.RoleUser)
	}

	if opts != nil && opts.Timeout != nil && *opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *opts.Timeout)
		defer cancel()
	}

	client, err := p.newClient(ctx, apiKey)
	if err != nil {
		return nil, p.sanitizeError(err)
	}

	var resp *genai.GenerateContentResponse
	if len(turns) > 1 {
		// Multi-turn path: seed a chat session with all but the last turn,
		// then send the last turn as the new message.
		final := turns[len(turns)-1]
		history := historyContents(turns[:len(turns)-1])
		resp, err = client.chat(ctx, model, history, final.text, config)
	} else {
		// Single-shot path. The API rejects an empty prompt, so fall back
		// to a single space when the conversation has no user content.
		prompt := lastPrompt
		if prompt == "" {
			prompt = " "
		}
		resp, err = client.generate(ctx, model, prompt, config)
	}
	if err != nil {
		return nil, p.sanitizeError(err)
	}

	return convertFromGeminiResponse(resp, model), nil
}

// resolveAPIKey returns the effective credential: explicit option first,
// then GEMINI_API_KEY, then the GOOGLE_API_KEY alias. Empty means absent.
func resolveAPIKey(opts *llmprovider.ExecutionOptions) string {
	if opts != nil && opts.APIKey != "" {
		return opts.APIKey
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return os.Getenv("GOOGLE_API_KEY")
}

// resolveModel returns the effective model name: options override, then the
// request's model, then the built-in default. No supported-model check is
// performed here; the remote API is the source of truth.
func resolveModel(req *llmprovider.GenerateRequest, opts *llmprovider.ExecutionOptions) string {
	if opts != nil && opts.Model != "" {
		return opts.Model
	}
	if req.Model != "" {
		return req.Model
	}
	return defaultModel
}

// sanitizeError wraps a failure from the genai SDK into a ProviderError.
// The raw error may embed the credential in a request URL or header dump,
// so the message is run through the redactor before it leaves this package.
func (p *Provider) sanitizeError(err error) error {
	perr := &llmprovider.ProviderError{
		Provider:      p.Name().String(),
		CorrelationID: uuid.NewString(),
		Message:       p.redactor.Redact(err.Error()),
		Err:           llmprovider.ErrRemoteFailure,
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		perr.StatusCode = apiErr.Code
		switch {
		case apiErr.Code == 429:
			perr.Retryable = true
			perr.Err = llmprovider.ErrRateLimited
		case apiErr.Code >= 500:
			perr.Retryable = true
			perr.Err = llmprovider.ErrProviderUnavailable
		}
	}

	return perr
}

// convertFromGeminiResponse converts a genai response to library format.
// Usage stays nil when the SDK reports no usage metadata.
func convertFromGeminiResponse(resp *genai.GenerateContentResponse, requestedModel string) *llmprovider.GenerateResponse {
	out := &llmprovider.GenerateResponse{
		Text:  resp.Text(),
		Model: requestedModel,
	}

	if resp.ModelVersion != "" {
		out.Model = resp.ModelVersion
	}

	if resp.UsageMetadata != nil {
		out.Usage = &llmprovider.TokenUsage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	return out
}
