// Package config defines the application configuration structures.
//
// Separated from cmd to allow other packages (db, ai, web, tui) to
// depend on config without importing Cobra.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all application settings.
type Config struct {
	// DBPath is the SQLite database file. Created and seeded if absent.
	DBPath string `json:"db_path"`

	// Addr is the web interface listen address.
	Addr string `json:"addr"`

	AI AIConfig `json:"ai"`
}

// Default returns baseline settings before file/env overrides.
func Default() *Config {
	return &Config{
		DBPath: "askdb.db",
		Addr:   ":8080",
		AI:     DefaultAIConfig(),
	}
}

// Load reads ~/.askdb/config.json (defaults if not found), then applies
// .env and process environment overrides. Environment always wins so a
// key never has to be written to disk.
func Load() (*Config, error) {
	// Best effort: a missing .env file is not an error.
	godotenv.Load() //nolint:errcheck

	cfg := Default()

	homeDir, err := os.UserHomeDir()
	if err == nil {
		path := filepath.Join(homeDir, ".askdb", "config.json")
		data, err := os.ReadFile(path)
		if err == nil {
			if err := json.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// applyEnv layers process environment variables over the file config.
func applyEnv(cfg *Config) {
	if v := os.Getenv("ASKDB_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("ASKDB_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("ASKDB_PROVIDER"); v != "" {
		cfg.AI.Provider = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.OpenAI.APIKey = v
	}
	if v := os.Getenv("OPENAI_ENDPOINT"); v != "" {
		cfg.AI.OpenAI.Endpoint = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.AI.OpenAI.Model = v
	}
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		cfg.AI.Anthropic.APIKey = v
	}
	if v := os.Getenv("OLLAMA_HOST"); v != "" {
		cfg.AI.Ollama.Host = v
	}
}

// Save writes the config to ~/.askdb/config.json.
func Save(cfg *Config) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	dir := filepath.Join(homeDir, ".askdb")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0600)
}
