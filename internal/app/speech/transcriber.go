package speech

import (
	"context"
	"fmt"

	"cinevoice/internal/app/assistant"
	"cinevoice/internal/config"
)

// Transcriber converts a local audio file to text
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string) (string, error)

	// Name identifies the provider in history records and logs
	Name() string
}

// NewTranscriber builds the transcriber selected by the provider config
func NewTranscriber(cfg *config.SpeechProvidersConfig, a assistant.Assistant) (Transcriber, error) {
	provider, ok := cfg.Providers[cfg.DefaultProvider]
	if !ok {
		return nil, fmt.Errorf("default provider %q is not defined", cfg.DefaultProvider)
	}

	switch provider.Type {
	case "gemini":
		return NewGeminiTranscriber(a), nil
	case "openai_whisper":
		model := provider.Model
		if model == "" {
			model = "whisper-1"
		}
		return NewWhisperTranscriber(model)
	default:
		return nil, fmt.Errorf("unknown provider type %q", provider.Type)
	}
}
