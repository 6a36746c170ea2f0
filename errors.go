package llmprovider

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
// These can be checked with errors.Is().
var (
	// ErrMissingAPIKey indicates no usable credential was found
	// (no explicit option and no environment variable).
	ErrMissingAPIKey = errors.New("llmprovider: missing API key")

	// ErrInvalidAPIKey indicates the API key is malformed or unauthorized.
	ErrInvalidAPIKey = errors.New("llmprovider: invalid API key")

	// ErrInvalidModel indicates the requested model is not supported by the provider.
	ErrInvalidModel = errors.New("llmprovider: invalid or unsupported model")

	// ErrInvalidRequest indicates the request parameters are invalid.
	ErrInvalidRequest = errors.New("llmprovider: invalid request")

	// ErrRateLimited indicates the provider's rate limit has been exceeded.
	ErrRateLimited = errors.New("llmprovider: rate limit exceeded")

	// ErrProviderUnavailable indicates the provider service is down or unreachable.
	ErrProviderUnavailable = errors.New("llmprovider: provider unavailable")

	// ErrRemoteFailure indicates the outbound provider call failed.
	// The wrapping ProviderError carries a redacted message and correlation ID.
	ErrRemoteFailure = errors.New("llmprovider: remote call failed")
)

// CredentialError represents a credential resolution or validation failure.
// It is raised before any network call is made.
type CredentialError struct {
	Provider string // The provider name
	Reason   string // Human-readable explanation
	Err      error  // Wrapped error (ErrMissingAPIKey or ErrInvalidAPIKey)
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("credential for provider '%s': %s (%v)", e.Provider, e.Reason, e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

// ModelError represents an error related to model validation or availability.
type ModelError struct {
	Model    string // The model that was requested
	Provider string // The provider name
	Reason   string // Human-readable explanation
	Err      error  // Wrapped error (usually ErrInvalidModel)
}

func (e *ModelError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model '%s' for provider '%s': %s (%v)", e.Model, e.Provider, e.Reason, e.Err)
	}
	return fmt.Sprintf("model '%s' for provider '%s': %s", e.Model, e.Provider, e.Reason)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// ProviderError represents an error from the underlying provider API.
// Message is always redacted before the error is surfaced: credential-shaped
// substrings are replaced with a placeholder so raw SDK errors (which may
// embed the key in a diagnostic URL or header dump) never reach callers.
type ProviderError struct {
	Provider      string // The provider name
	CorrelationID string // Correlates the surfaced error with provider-side logs
	StatusCode    int    // HTTP status code (if applicable)
	Message       string // Redacted error message from provider
	Retryable     bool   // Whether this error is potentially retryable
	Err           error  // Wrapped sentinel error (ErrRemoteFailure, ErrRateLimited, etc.)
}

func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider '%s' error (status %d) [%s]: %s", e.Provider, e.StatusCode, e.CorrelationID, e.Message)
	}
	return fmt.Sprintf("provider '%s' error [%s]: %s", e.Provider, e.CorrelationID, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// IsRetryable checks if an error is potentially retryable.
// Returns true for rate limits, temporary unavailability, network errors, etc.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// Check for ProviderError with Retryable flag
	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}

	// Rate limits are always retryable
	if errors.Is(err, ErrRateLimited) {
		return true
	}

	// Provider unavailable is retryable
	if errors.Is(err, ErrProviderUnavailable) {
		return true
	}

	return false
}

// IsInvalidRequest checks if an error indicates invalid request parameters.
// These errors are not retryable and require request changes.
func IsInvalidRequest(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrInvalidRequest) {
		return true
	}

	if errors.Is(err, ErrInvalidModel) {
		return true
	}

	return false
}

// IsAuthError checks if an error is related to authentication.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrMissingAPIKey) {
		return true
	}

	if errors.Is(err, ErrInvalidAPIKey) {
		return true
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		// HTTP 401/403 indicate auth issues
		return providerErr.StatusCode == 401 || providerErr.StatusCode == 403
	}

	return false
}
