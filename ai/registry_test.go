package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askdb/askdb/config"
)

func TestNewProviderRequiresCredentials(t *testing.T) {
	cfg := config.DefaultAIConfig()

	// Default provider is openai; without a key this is a startup error.
	_, err := NewProvider(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")

	cfg.Provider = "anthropic"
	_, err = NewProvider(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
}

func TestNewProviderSelection(t *testing.T) {
	cfg := config.DefaultAIConfig()
	cfg.OpenAI.APIKey = "sk-test"

	p, err := NewProvider(cfg)
	require.NoError(t, err)
	assert.Contains(t, p.Name(), "OpenAI")

	cfg.Provider = "ollama"
	p, err = NewProvider(cfg)
	require.NoError(t, err)
	assert.Contains(t, p.Name(), "Ollama")

	cfg.Provider = "placeholder"
	p, err = NewProvider(cfg)
	require.NoError(t, err)
	assert.Equal(t, "placeholder", p.Name())

	cfg.Provider = "bogus"
	_, err = NewProvider(cfg)
	assert.Error(t, err)
}
