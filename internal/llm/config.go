// Package llm provides the generation-API boundary: client abstraction,
// model configuration, and response post-processing.
package llm

// ModelTier represents the capability level of a model.
type ModelTier string

const (
	// TierFast is for one-shot content suggestions: summaries, bullet
	// points, skill lists.
	TierFast ModelTier = "fast"
	// TierQuality is for whole-document generation: tailored resumes and
	// fresher presets.
	TierQuality ModelTier = "quality"
)

// Provider represents an LLM provider.
type Provider string

// Supported providers.
const (
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string
}

// DefaultConfig returns the default Gemini configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierFast:    "gemini-2.5-flash",
			TierQuality: "gemini-2.5-pro",
		},
	}
}

// GetModel returns the model name for a tier, falling back to the fast tier
// when the requested one is not configured.
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	if model, ok := c.Models[TierFast]; ok {
		return model
	}
	return ""
}

// WithModel returns a copy of the config with a specific model for a tier.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{
		Provider: c.Provider,
		Models:   make(map[ModelTier]string, len(c.Models)),
	}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
