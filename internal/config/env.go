package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// APIKeys holds all vendor API keys loaded from environment
type APIKeys struct {
	Gemini string
	OpenAI string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing .env is not an error: keys may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// GetAPIKeys retrieves and validates API keys from environment variables.
// Keys are optional here; operations that need a key fail at call time.
func GetAPIKeys() (*APIKeys, error) {
	apiKeys := &APIKeys{
		Gemini: strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		OpenAI: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
	}

	if apiKeys.Gemini != "" {
		if err := ValidateAPIKey(apiKeys.Gemini, "Gemini"); err != nil {
			return nil, err
		}
	}

	if apiKeys.OpenAI != "" {
		if err := ValidateAPIKey(apiKeys.OpenAI, "OpenAI"); err != nil {
			return nil, err
		}
	}

	return apiKeys, nil
}

// RequireGeminiKey validates that the Gemini key is present.
// The assistant cannot initialize without it.
func RequireGeminiKey(apiKeys *APIKeys) error {
	if apiKeys.Gemini == "" {
		return fmt.Errorf("GEMINI_API_KEY must be set in environment or .env file")
	}
	return nil
}

// InitializeConfig loads environment and validates API keys.
// This is the main entry point for configuration loading.
func InitializeConfig() (*APIKeys, error) {
	if err := LoadEnv(); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	apiKeys, err := GetAPIKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys: %w", err)
	}

	return apiKeys, nil
}
