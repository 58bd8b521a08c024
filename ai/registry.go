package ai

import (
	"fmt"

	"github.com/askdb/askdb/config"
)

// SupportedProviders lists available provider names for display.
var SupportedProviders = []string{"openai", "anthropic", "ollama", "placeholder"}

// NewProvider creates an AI provider from the application config.
// A missing API key for the selected provider is an error; the caller
// treats it as fatal at startup.
func NewProvider(cfg config.AIConfig) (Provider, error) {
	switch cfg.Provider {
	case "openai", "":
		if cfg.OpenAI.APIKey == "" {
			return nil, fmt.Errorf("OpenAI API key not set. Set OPENAI_API_KEY env var or add it to ~/.askdb/config.json")
		}
		return NewOpenAI(cfg.OpenAI.APIKey, cfg.OpenAI.Endpoint, cfg.OpenAI.Model), nil

	case "anthropic":
		if cfg.Anthropic.APIKey == "" {
			return nil, fmt.Errorf("Anthropic API key not set. Set ANTHROPIC_API_KEY env var or add it to ~/.askdb/config.json")
		}
		return NewAnthropic(cfg.Anthropic.APIKey, cfg.Anthropic.Model), nil

	case "ollama":
		return NewOllama(cfg.Ollama.Host, cfg.Ollama.Model), nil

	case "placeholder":
		return NewPlaceholder(), nil

	default:
		return nil, fmt.Errorf("unknown AI provider %q. Supported: openai, anthropic, ollama", cfg.Provider)
	}
}
