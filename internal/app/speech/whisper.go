package speech

import (
	"context"
	"fmt"
	"os"

	"github.com/sashabaranov/go-openai"
)

// WhisperTranscriber transcribes with the OpenAI Whisper API
type WhisperTranscriber struct {
	client *openai.Client
	model  string
}

// NewWhisperTranscriber needs OPENAI_API_KEY in the environment
func NewWhisperTranscriber(model string) (*WhisperTranscriber, error) {
	token, ok := os.LookupEnv("OPENAI_API_KEY")
	if !ok || token == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}
	return &WhisperTranscriber{
		client: openai.NewClient(token),
		model:  model,
	}, nil
}

func (t *WhisperTranscriber) Name() string {
	return "openai_whisper"
}

func (t *WhisperTranscriber) Transcript(ctx context.Context, inputFilePath string) (string, error) {
	req := openai.AudioRequest{
		Model:    t.model,
		FilePath: inputFilePath,
	}
	resp, err := t.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}
	return resp.Text, nil
}
