package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpeechProvidersConfig selects which transcriber backs transcript-only paths
type SpeechProvidersConfig struct {
	DefaultProvider string                          `yaml:"default_provider"`
	Providers       map[string]SpeechProviderConfig `yaml:"providers"`
}

// SpeechProviderConfig configures a single transcriber
type SpeechProviderConfig struct {
	Type     string            `yaml:"type"`
	Enabled  bool              `yaml:"enabled"`
	Model    string            `yaml:"model,omitempty"`
	Language string            `yaml:"language,omitempty"`
	Settings map[string]string `yaml:"settings,omitempty"`
}

// DefaultSpeechProviders is used when no YAML file is configured
func DefaultSpeechProviders() *SpeechProvidersConfig {
	return &SpeechProvidersConfig{
		DefaultProvider: "gemini",
		Providers: map[string]SpeechProviderConfig{
			"gemini": {
				Type:    "gemini",
				Enabled: true,
			},
			"whisper": {
				Type:    "openai_whisper",
				Enabled: true,
				Model:   "whisper-1",
			},
		},
	}
}

// LoadSpeechProviders loads provider configuration from a YAML file
func LoadSpeechProviders(configPath string) (*SpeechProvidersConfig, error) {
	configPath = os.ExpandEnv(configPath)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg SpeechProvidersConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the provider configuration is usable
func (c *SpeechProvidersConfig) Validate() error {
	if c.DefaultProvider == "" {
		return fmt.Errorf("default_provider is required")
	}

	provider, ok := c.Providers[c.DefaultProvider]
	if !ok {
		return fmt.Errorf("default_provider %q is not defined", c.DefaultProvider)
	}
	if !provider.Enabled {
		return fmt.Errorf("default_provider %q is disabled", c.DefaultProvider)
	}

	for name, p := range c.Providers {
		switch p.Type {
		case "gemini", "openai_whisper":
		default:
			return fmt.Errorf("provider %q has unknown type %q", name, p.Type)
		}
	}

	return nil
}
