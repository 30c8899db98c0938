package speech

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"cinevoice/internal/app/assistant"
)

// GeminiTranscriber reads a local file and delegates to the assistant's
// single-shot transcription call
type GeminiTranscriber struct {
	assistant assistant.Assistant
}

func NewGeminiTranscriber(a assistant.Assistant) *GeminiTranscriber {
	return &GeminiTranscriber{assistant: a}
}

func (t *GeminiTranscriber) Name() string {
	return "gemini"
}

func (t *GeminiTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	audio, err := os.ReadFile(inputFilePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", inputFilePath, err)
	}

	return t.assistant.Transcribe(ctx, audio, mimeTypeFor(inputFilePath))
}

func mimeTypeFor(path string) string {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		return mt
	}
	return "audio/mpeg"
}
