package llmprovider

import (
	"encoding/json"
	"fmt"
	"time"
)

// RequestParams represents all possible LLM request parameters across providers.
// All fields are optional pointers to distinguish "not set" from "set to zero value".
type RequestParams struct {
	// Model specifies the LLM model to use (e.g., "gemini-1.5-pro")
	// Can be overridden at request time
	Model *string `json:"model,omitempty"`

	// MaxTokens sets the maximum number of tokens to generate
	MaxTokens *int `json:"max_tokens,omitempty"`

	// Temperature controls randomness (0.0-2.0)
	// 0.0 = deterministic, higher = more random
	Temperature *float64 `json:"temperature,omitempty"`

	// TopP (nucleus sampling) - cumulative probability cutoff (0.0-1.0)
	TopP *float64 `json:"top_p,omitempty"`

	// TopK limits sampling to top K tokens
	TopK *int `json:"top_k,omitempty"`

	// Stop sequences - generation stops if any of these are generated
	Stop []string `json:"stop,omitempty"`

	// ResponseFormat for structured outputs (JSON mode, JSON schema)
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

// ResponseFormat specifies the format for structured outputs
type ResponseFormat struct {
	Type       string                 `json:"type"`                  // "text", "json_object", "json_schema"
	JSONSchema map[string]interface{} `json:"json_schema,omitempty"` // Schema for structured output
}

// ExecutionOptions carries per-call overrides supplied alongside a request.
// All of these are optional; zero values mean "use the request/provider default".
type ExecutionOptions struct {
	// APIKey overrides the environment-sourced credential.
	// An empty string is treated the same as absent.
	APIKey string `json:"api_key,omitempty"`

	// Model overrides GenerateRequest.Model
	Model string `json:"model,omitempty"`

	// Temperature overrides RequestParams.Temperature
	Temperature *float64 `json:"temperature,omitempty"`

	// MaxTokens overrides RequestParams.MaxTokens
	MaxTokens *int `json:"max_tokens,omitempty"`

	// Timeout bounds the whole call (applied via context deadline)
	Timeout *time.Duration `json:"timeout,omitempty"`

	// Retries is accepted for interface compatibility. The bundled providers
	// perform no internal retry loops; the underlying SDK owns retry behavior.
	Retries *int `json:"retries,omitempty"`
}

// ValidateRequestParams validates request parameters
func ValidateRequestParams(params *RequestParams) error {
	if params == nil {
		return nil // nil params is valid
	}

	// Validate ranges
	if params.Temperature != nil {
		if *params.Temperature < 0.0 || *params.Temperature > 2.0 {
			return fmt.Errorf("temperature must be between 0.0 and 2.0, got %f", *params.Temperature)
		}
	}

	if params.TopP != nil {
		if *params.TopP < 0.0 || *params.TopP > 1.0 {
			return fmt.Errorf("top_p must be between 0.0 and 1.0, got %f", *params.TopP)
		}
	}

	if params.TopK != nil {
		if *params.TopK < 0 {
			return fmt.Errorf("top_k must be non-negative, got %d", *params.TopK)
		}
	}

	if params.MaxTokens != nil {
		if *params.MaxTokens < 1 {
			return fmt.Errorf("max_tokens must be positive, got %d", *params.MaxTokens)
		}
	}

	if params.ResponseFormat != nil {
		switch params.ResponseFormat.Type {
		case "", "text", "json_object", "json_schema":
		default:
			return fmt.Errorf("response_format type must be 'text', 'json_object', or 'json_schema', got '%s'", params.ResponseFormat.Type)
		}
	}

	return nil
}

// GetRequestParamStruct unmarshals a JSONB map into a typed RequestParams struct
func GetRequestParamStruct(params map[string]interface{}) (*RequestParams, error) {
	if params == nil {
		return &RequestParams{}, nil
	}

	jsonBytes, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal params: %w", err)
	}

	var rp RequestParams
	if err := json.Unmarshal(jsonBytes, &rp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal params: %w", err)
	}

	return &rp, nil
}

// GetMaxTokens returns max_tokens with default fallback
func (rp *RequestParams) GetMaxTokens(defaultValue int) int {
	if rp.MaxTokens != nil {
		return *rp.MaxTokens
	}
	return defaultValue
}

// GetTemperature returns temperature with default fallback
func (rp *RequestParams) GetTemperature(defaultValue float64) float64 {
	if rp.Temperature != nil {
		return *rp.Temperature
	}
	return defaultValue
}
