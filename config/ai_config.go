// Package config — AI provider configuration.
//
// AI settings live in ~/.askdb/config.json. API keys can also be set
// via environment variables (OPENAI_API_KEY, ANTHROPIC_API_KEY) or a
// .env file in the working directory.
package config

// AIConfig holds the AI provider selection and credentials.
type AIConfig struct {
	Provider  string          `json:"provider"` // "openai", "anthropic", "ollama", "placeholder"
	OpenAI    OpenAIConfig    `json:"openai"`
	Anthropic AnthropicConfig `json:"anthropic"`
	Ollama    OllamaConfig    `json:"ollama"`
}

// OpenAIConfig holds OpenAI-specific settings.
// Endpoint overrides the API base URL for Azure-style deployments.
type OpenAIConfig struct {
	APIKey   string `json:"api_key,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
	Model    string `json:"model"`
}

// AnthropicConfig holds Anthropic-specific settings.
type AnthropicConfig struct {
	APIKey string `json:"api_key,omitempty"`
	Model  string `json:"model"`
}

// OllamaConfig holds Ollama-specific settings.
type OllamaConfig struct {
	Host  string `json:"host"`
	Model string `json:"model"`
}

// DefaultAIConfig returns sensible defaults.
func DefaultAIConfig() AIConfig {
	return AIConfig{
		Provider: "openai",
		OpenAI: OpenAIConfig{
			Model: "gpt-4o",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-sonnet-4-20250514",
		},
		Ollama: OllamaConfig{
			Host:  "http://localhost:11434",
			Model: "llama3.2",
		},
	}
}
