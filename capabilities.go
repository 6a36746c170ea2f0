package llmprovider

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/capabilities/gemini.yaml
var geminiCapabilitiesYAML []byte

// Capabilities Philosophy:
//
// This package provides MODEL METADATA for UX, pricing calculations, and informational purposes.
// It does NOT enforce validation - provider APIs are the source of truth.
//
// Use cases:
//  - Display model limits/features in UI
//  - Calculate pricing estimates
//  - Provide warnings (not errors)
//
// Capabilities may be outdated as providers release new models/features.
// Library users can override embedded capabilities by:
//  1. Calling LoadCapabilitiesFromFile() with custom YAML
//  2. Calling RegisterProviderCapabilities() programmatically
//
// The library trusts provider APIs to validate requests.

// ProviderCapabilities represents the full capability configuration for a provider
type ProviderCapabilities struct {
	Version     string                     `yaml:"version"`      // Semantic version (e.g., "1.0.0")
	LastUpdated string                     `yaml:"last_updated"` // ISO 8601 date (e.g., "2025-01-15")
	Provider    string                     `yaml:"provider"`
	Models      map[string]ModelCapability `yaml:"models"`
	Constraints ProviderConstraints        `yaml:"constraints"`
}

// ModelCapability represents the capabilities of a specific model
type ModelCapability struct {
	ContextWindow   int           `yaml:"context_window"`
	MaxOutputTokens int           `yaml:"max_output_tokens"`
	Features        ModelFeatures `yaml:"features"`
	Pricing         PricingInfo   `yaml:"pricing"`
}

// ModelFeatures indicates which features a model supports
type ModelFeatures struct {
	Vision           bool `yaml:"vision"`
	Tools            bool `yaml:"tools"`
	StructuredOutput bool `yaml:"structured_output"`
	Streaming        bool `yaml:"streaming"`
}

// PricingInfo contains model pricing information
type PricingInfo struct {
	InputPer1M  float64 `yaml:"input_per_1m"`
	OutputPer1M float64 `yaml:"output_per_1m"`
}

// ProviderConstraints defines provider-wide parameter limits
type ProviderConstraints struct {
	TemperatureMin float64 `yaml:"temperature_min"`
	TemperatureMax float64 `yaml:"temperature_max"`
	TopPMin        float64 `yaml:"top_p_min"`
	TopPMax        float64 `yaml:"top_p_max"`
	TopKMin        int     `yaml:"top_k_min"`
	TopKMax        int     `yaml:"top_k_max"`
}

// CapabilityRegistry manages provider capabilities
type CapabilityRegistry struct {
	capabilities map[string]*ProviderCapabilities
	mu           sync.RWMutex
}

var (
	globalRegistry     *CapabilityRegistry
	globalRegistryOnce sync.Once
)

// GetCapabilityRegistry returns the global capability registry (singleton)
func GetCapabilityRegistry() *CapabilityRegistry {
	globalRegistryOnce.Do(func() {
		globalRegistry = &CapabilityRegistry{
			capabilities: make(map[string]*ProviderCapabilities),
		}
		// Load embedded Gemini capabilities
		if err := globalRegistry.loadGeminiCapabilities(); err != nil {
			// Log error but don't panic - lookups will report missing capabilities
			fmt.Printf("Warning: failed to load Gemini capabilities: %v\n", err)
		}
	})
	return globalRegistry
}

// loadGeminiCapabilities loads the embedded Gemini YAML
func (r *CapabilityRegistry) loadGeminiCapabilities() error {
	var caps ProviderCapabilities
	if err := yaml.Unmarshal(geminiCapabilitiesYAML, &caps); err != nil {
		return fmt.Errorf("failed to unmarshal Gemini capabilities: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.capabilities[ProviderGemini.String()] = &caps

	return nil
}

// RegisterProviderCapabilities registers capabilities programmatically
func (r *CapabilityRegistry) RegisterProviderCapabilities(provider string, caps *ProviderCapabilities) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.capabilities[provider] = caps
}

// LoadCapabilitiesFromFile loads capabilities from a custom YAML file,
// overriding any embedded capabilities for the same provider.
func (r *CapabilityRegistry) LoadCapabilitiesFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read capabilities file: %w", err)
	}

	var caps ProviderCapabilities
	if err := yaml.Unmarshal(data, &caps); err != nil {
		return fmt.Errorf("failed to unmarshal capabilities file: %w", err)
	}

	if caps.Provider == "" {
		return fmt.Errorf("capabilities file missing 'provider' field")
	}

	r.RegisterProviderCapabilities(caps.Provider, &caps)
	return nil
}

// GetProviderCapabilities returns capabilities for a provider
func (r *CapabilityRegistry) GetProviderCapabilities(provider string) (*ProviderCapabilities, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	caps, ok := r.capabilities[provider]
	if !ok {
		return nil, fmt.Errorf("no capabilities found for provider: %s", provider)
	}
	return caps, nil
}

// GetModelCapability returns capabilities for a specific model
func (r *CapabilityRegistry) GetModelCapability(provider, model string) (*ModelCapability, error) {
	providerCaps, err := r.GetProviderCapabilities(provider)
	if err != nil {
		return nil, err
	}

	modelCap, ok := providerCaps.Models[model]
	if !ok {
		return nil, fmt.Errorf("model %s not found for provider %s", model, provider)
	}
	return &modelCap, nil
}

// HasModelMetadata checks if metadata is available for a specific model
func (r *CapabilityRegistry) HasModelMetadata(provider, model string) bool {
	_, err := r.GetModelCapability(provider, model)
	return err == nil
}

// SupportsStructuredOutput checks if a model supports schema-constrained output
func (r *CapabilityRegistry) SupportsStructuredOutput(provider, model string) bool {
	modelCap, err := r.GetModelCapability(provider, model)
	if err != nil {
		return false
	}
	return modelCap.Features.StructuredOutput
}

// SupportsTools checks if a model supports tools
func (r *CapabilityRegistry) SupportsTools(provider, model string) bool {
	modelCap, err := r.GetModelCapability(provider, model)
	if err != nil {
		return false
	}
	return modelCap.Features.Tools
}

// EstimateCost returns the estimated cost in USD for the given token usage.
func (r *CapabilityRegistry) EstimateCost(provider, model string, usage *TokenUsage) (float64, error) {
	if usage == nil {
		return 0, nil
	}

	modelCap, err := r.GetModelCapability(provider, model)
	if err != nil {
		return 0, err
	}

	inputCost := float64(usage.InputTokens) / 1_000_000 * modelCap.Pricing.InputPer1M
	outputCost := float64(usage.OutputTokens) / 1_000_000 * modelCap.Pricing.OutputPer1M
	return inputCost + outputCost, nil
}
