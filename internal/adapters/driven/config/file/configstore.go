// Package file provides file-based configuration and prompt stores under
// the mediq config directory.
package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// LLMConfig configures the generation endpoint.
type LLMConfig struct {
	// APIKey authenticates against the endpoint. The MEDIQ_API_KEY and
	// OPENAI_API_KEY environment variables override it.
	APIKey string `toml:"api_key"`

	// BaseURL points at any OpenAI-compatible endpoint.
	BaseURL string `toml:"base_url"`

	// Model is the completion model name.
	Model string `toml:"model"`

	// TimeoutSeconds is the per-request timeout.
	TimeoutSeconds int `toml:"timeout_seconds"`

	// MaxAttempts bounds transport-level retries.
	MaxAttempts int `toml:"max_attempts"`

	// RequestsPerMinute throttles outgoing calls.
	RequestsPerMinute int `toml:"requests_per_minute"`

	// Temperature for generation; low values favour literal extraction.
	Temperature float32 `toml:"temperature"`

	// MaxTokens caps the generated answer length.
	MaxTokens int `toml:"max_tokens"`
}

// Config is the mediq configuration, stored as TOML in the config
// directory (~/.mediq/config.toml by default).
type Config struct {
	// DataDir holds the record database. Empty means ~/.mediq/data.
	DataDir string `toml:"data_dir"`

	// MaxContextBytes caps the combined record text embedded in one
	// symptom-search prompt. Zero means the built-in default.
	MaxContextBytes int `toml:"max_context_bytes"`

	LLM LLMConfig `toml:"llm"`
}

// defaultConfig returns the built-in configuration.
func defaultConfig() *Config {
	return &Config{
		LLM: LLMConfig{
			Model:             "gpt-4o-mini",
			TimeoutSeconds:    120,
			MaxAttempts:       3,
			RequestsPerMinute: 60,
			Temperature:       0.3,
			MaxTokens:         2000,
		},
	}
}

// ConfigPath returns the config file path for a config directory.
// An empty configDir means ~/.mediq.
func ConfigPath(configDir string) (string, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".mediq")
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// Load reads the configuration, applying defaults for anything unset and
// environment-variable overrides for the API key and base URL. A missing
// config file is not an error; the defaults are returned.
func Load(configDir string) (*Config, error) {
	cfg := defaultConfig()

	path, err := ConfigPath(configDir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if key := os.Getenv("MEDIQ_API_KEY"); key != "" {
		cfg.LLM.APIKey = key
	} else if key := os.Getenv("OPENAI_API_KEY"); key != "" && cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = key
	}
	if url := os.Getenv("OPENAI_BASE_URL"); url != "" && cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = url
	}

	return cfg, nil
}

// Save writes the configuration as TOML, creating the directory if
// necessary.
func Save(configDir string, cfg *Config) error {
	path, err := ConfigPath(configDir)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
