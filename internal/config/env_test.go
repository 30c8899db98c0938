package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAPIKeys(t *testing.T) {
	originalGemini := os.Getenv("GEMINI_API_KEY")
	originalOpenAI := os.Getenv("OPENAI_API_KEY")
	defer func() {
		os.Setenv("GEMINI_API_KEY", originalGemini)
		os.Setenv("OPENAI_API_KEY", originalOpenAI)
	}()

	testCases := []struct {
		name          string
		geminiKey     string
		openaiKey     string
		expectError   bool
		errorContains string
	}{
		{
			name:        "valid Gemini key",
			geminiKey:   "AIzaTest-1234567890abcdef1234567890",
			expectError: false,
		},
		{
			name:        "valid OpenAI key",
			openaiKey:   "sk-1234567890abcdef1234567890abcdef",
			expectError: false,
		},
		{
			name:        "no keys set",
			expectError: false,
		},
		{
			name:          "invalid Gemini key prefix",
			geminiKey:     "invalid-key-1234567890abcdef123456",
			expectError:   true,
			errorContains: "must start with 'AIza'",
		},
		{
			name:          "Gemini key too short",
			geminiKey:     "AIzaShort",
			expectError:   true,
			errorContains: "too short",
		},
		{
			name:          "invalid OpenAI key prefix",
			openaiKey:     "invalid-key-1234567890",
			expectError:   true,
			errorContains: "must start with 'sk-'",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			os.Setenv("GEMINI_API_KEY", tc.geminiKey)
			os.Setenv("OPENAI_API_KEY", tc.openaiKey)

			keys, err := GetAPIKeys()
			if tc.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errorContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.geminiKey, keys.Gemini)
			assert.Equal(t, tc.openaiKey, keys.OpenAI)
		})
	}
}

func TestRequireGeminiKey(t *testing.T) {
	err := RequireGeminiKey(&APIKeys{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	err = RequireGeminiKey(&APIKeys{Gemini: "AIzaTest-1234567890abcdef1234567890"})
	assert.NoError(t, err)
}

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"SERVER_HOST", "SERVER_PORT", "MEDIA_ROOT", "DB_BACKEND", "GEMINI_LIVE_MODEL"} {
		original := os.Getenv(key)
		os.Unsetenv(key)
		defer os.Setenv(key, original)
	}

	cfg := FromEnv()
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "media", cfg.Media.Root)
	assert.Equal(t, "sqlite", cfg.DB.Backend)
	assert.Equal(t, "gemini-2.0-flash-live-001", cfg.Models.LiveModel)
	assert.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	cfg := FromEnv()
	cfg.Server.Port = "not-a-port"
	assert.Error(t, cfg.Validate())
}
