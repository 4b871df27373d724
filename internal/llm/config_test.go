package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetModel_ConfiguredTier(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "gemini-2.5-flash", cfg.GetModel(TierFast))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierQuality))
}

func TestGetModel_FallsBackToFast(t *testing.T) {
	cfg := &Config{
		Provider: ProviderGemini,
		Models:   map[ModelTier]string{TierFast: "fast-model"},
	}
	assert.Equal(t, "fast-model", cfg.GetModel(TierQuality))
}

func TestGetModel_Empty(t *testing.T) {
	cfg := &Config{Provider: ProviderGemini, Models: map[ModelTier]string{}}
	assert.Empty(t, cfg.GetModel(TierQuality))
}

func TestWithModel_DoesNotMutateOriginal(t *testing.T) {
	cfg := DefaultConfig()
	custom := cfg.WithModel(TierQuality, "other-model")

	assert.Equal(t, "other-model", custom.GetModel(TierQuality))
	assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(TierQuality))
}
