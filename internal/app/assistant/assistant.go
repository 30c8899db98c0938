package assistant

import (
	"context"

	"cinevoice/internal/app/model"
)

// AudioReply is the collected result of one conversational turn.
// Audio may be empty when synthesis failed; Text is always best-effort.
type AudioReply struct {
	Audio      []byte
	MIMEType   string
	Transcript string
	Text       string
}

// Assistant is the conversational interface backed by the vendor service.
// The interface is defined where it is consumed, implementations live here
// and in test mocks.
type Assistant interface {
	// RespondToAudio runs the unified audio session: transcription,
	// reasoning and speech synthesis in one round trip.
	RespondToAudio(ctx context.Context, audio []byte, mimeType string) (*AudioReply, error)

	// RecommendMovies returns grounded movie suggestions for a query.
	RecommendMovies(ctx context.Context, query string) ([]model.Recommendation, error)

	// Transcribe returns the transcript of an audio clip.
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}
