package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "askdb.db", cfg.DBPath)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "openai", cfg.AI.Provider)
	assert.Equal(t, "gpt-4o", cfg.AI.OpenAI.Model)
	assert.Equal(t, "http://localhost:11434", cfg.AI.Ollama.Host)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("ASKDB_DB", "/tmp/other.db")
	t.Setenv("ASKDB_PROVIDER", "anthropic")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_ENDPOINT", "https://example.azure.com/v1")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg := Default()
	applyEnv(cfg)

	assert.Equal(t, "/tmp/other.db", cfg.DBPath)
	assert.Equal(t, "anthropic", cfg.AI.Provider)
	assert.Equal(t, "sk-test", cfg.AI.OpenAI.APIKey)
	assert.Equal(t, "https://example.azure.com/v1", cfg.AI.OpenAI.Endpoint)
	assert.Equal(t, "sk-ant-test", cfg.AI.Anthropic.APIKey)
}
