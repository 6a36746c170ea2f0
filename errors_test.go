package llmprovider

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCredentialError_Unwrap(t *testing.T) {
	err := &CredentialError{
		Provider: "gemini",
		Reason:   "no API key found",
		Err:      ErrMissingAPIKey,
	}

	if !errors.Is(err, ErrMissingAPIKey) {
		t.Error("CredentialError should unwrap to ErrMissingAPIKey")
	}
	if errors.Is(err, ErrInvalidAPIKey) {
		t.Error("missing-key error should not match ErrInvalidAPIKey")
	}
	if !strings.Contains(err.Error(), "gemini") {
		t.Errorf("error message should name the provider, got %q", err.Error())
	}
}

func TestProviderError_Format(t *testing.T) {
	err := &ProviderError{
		Provider:      "gemini",
		CorrelationID: "abc-123",
		Message:       "backend exploded",
		Err:           ErrRemoteFailure,
	}

	msg := err.Error()
	if !strings.Contains(msg, "gemini") {
		t.Errorf("message should contain provider, got %q", msg)
	}
	if !strings.Contains(msg, "abc-123") {
		t.Errorf("message should contain correlation ID, got %q", msg)
	}

	err.StatusCode = 503
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("message should contain status code, got %q", err.Error())
	}
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"missing key sentinel", ErrMissingAPIKey, true},
		{"invalid key sentinel", ErrInvalidAPIKey, true},
		{"wrapped credential error", &CredentialError{Provider: "gemini", Err: ErrInvalidAPIKey}, true},
		{"provider 401", &ProviderError{StatusCode: 401, Err: ErrRemoteFailure}, true},
		{"provider 403", &ProviderError{StatusCode: 403, Err: ErrRemoteFailure}, true},
		{"provider 500", &ProviderError{StatusCode: 500, Err: ErrRemoteFailure}, false},
		{"unrelated", fmt.Errorf("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"rate limited", ErrRateLimited, true},
		{"provider unavailable", ErrProviderUnavailable, true},
		{"retryable provider error", &ProviderError{Retryable: true, Err: ErrRemoteFailure}, true},
		{"non-retryable provider error", &ProviderError{Retryable: false, Err: ErrRemoteFailure}, false},
		{"missing key", ErrMissingAPIKey, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.want {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsInvalidRequest(t *testing.T) {
	modelErr := &ModelError{
		Model:    "gpt-4",
		Provider: "gemini",
		Reason:   "wrong family",
		Err:      ErrInvalidModel,
	}

	if !IsInvalidRequest(modelErr) {
		t.Error("ModelError wrapping ErrInvalidModel should be an invalid request")
	}
	if IsInvalidRequest(ErrRemoteFailure) {
		t.Error("remote failure should not be an invalid request")
	}
}
