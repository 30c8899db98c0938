package speech

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cinevoice/internal/app/testutil"
	"cinevoice/internal/config"
)

func TestNewTranscriberSelectsGemini(t *testing.T) {
	cfg := config.DefaultSpeechProviders()

	tr, err := NewTranscriber(cfg, &testutil.MockAssistant{})
	require.NoError(t, err)
	assert.Equal(t, "gemini", tr.Name())
}

func TestNewTranscriberSelectsWhisper(t *testing.T) {
	original := os.Getenv("OPENAI_API_KEY")
	defer os.Setenv("OPENAI_API_KEY", original)
	os.Setenv("OPENAI_API_KEY", "sk-test-1234567890abcdef")

	cfg := config.DefaultSpeechProviders()
	cfg.DefaultProvider = "whisper"

	tr, err := NewTranscriber(cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, "openai_whisper", tr.Name())
}

func TestNewTranscriberWhisperWithoutKey(t *testing.T) {
	original := os.Getenv("OPENAI_API_KEY")
	defer os.Setenv("OPENAI_API_KEY", original)
	os.Unsetenv("OPENAI_API_KEY")

	cfg := config.DefaultSpeechProviders()
	cfg.DefaultProvider = "whisper"

	_, err := NewTranscriber(cfg, nil)
	assert.ErrorContains(t, err, "OPENAI_API_KEY")
}

func TestNewTranscriberUnknownProvider(t *testing.T) {
	cfg := &config.SpeechProvidersConfig{
		DefaultProvider: "missing",
		Providers:       map[string]config.SpeechProviderConfig{},
	}

	_, err := NewTranscriber(cfg, nil)
	assert.ErrorContains(t, err, "not defined")
}

func TestGeminiTranscriberDelegatesToAssistant(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	require.NoError(t, os.WriteFile(path, []byte("RIFF....WAVE"), 0o644))

	mockAssistant := &testutil.MockAssistant{}
	mockAssistant.On("Transcribe", mock.Anything, []byte("RIFF....WAVE"), mimeTypeFor(path)).
		Return("hello there", nil)

	tr := NewGeminiTranscriber(mockAssistant)
	transcript, err := tr.Transcript(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "hello there", transcript)
	mockAssistant.AssertExpectations(t)
}

func TestGeminiTranscriberMissingFile(t *testing.T) {
	tr := NewGeminiTranscriber(&testutil.MockAssistant{})

	_, err := tr.Transcript(context.Background(), filepath.Join(t.TempDir(), "absent.mp3"))
	assert.ErrorContains(t, err, "failed to read")
}

func TestMimeTypeFor(t *testing.T) {
	assert.Equal(t, "audio/mpeg", mimeTypeFor("clip.bin"))
	assert.Contains(t, mimeTypeFor("clip.wav"), "audio/")
}
