package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSpeechProviders(t *testing.T) {
	cfg := DefaultSpeechProviders()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "gemini", cfg.DefaultProvider)
	assert.Contains(t, cfg.Providers, "whisper")
}

func TestLoadSpeechProviders(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "providers.yaml")
	content := `default_provider: whisper
providers:
  whisper:
    type: openai_whisper
    enabled: true
    model: whisper-1
  gemini:
    type: gemini
    enabled: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadSpeechProviders(path)
	require.NoError(t, err)
	assert.Equal(t, "whisper", cfg.DefaultProvider)
	assert.Equal(t, "whisper-1", cfg.Providers["whisper"].Model)
	assert.False(t, cfg.Providers["gemini"].Enabled)
}

func TestLoadSpeechProvidersErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadSpeechProviders(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "not found")

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_provider: nope\nproviders: {}\n"), 0644))
	_, err = LoadSpeechProviders(path)
	assert.ErrorContains(t, err, "not defined")

	path = filepath.Join(dir, "badtype.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`default_provider: x
providers:
  x:
    type: carrier-pigeon
    enabled: true
`), 0644))
	_, err = LoadSpeechProviders(path)
	assert.ErrorContains(t, err, "unknown type")
}
