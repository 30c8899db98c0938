package services

import (
	"context"

	"cinevoice/internal/api/v1/dto"
)

// ConversationResult is the outcome of one audio exchange
type ConversationResult struct {
	Audio      []byte
	MIMEType   string
	Text       string
	Transcript string
}

// ConversationService runs the audio round trip: archive the upload, call
// the vendor, archive and record the response
type ConversationService interface {
	HandleAudio(ctx context.Context, audio []byte, originalName string) (*ConversationResult, error)
}

// RecommendationService answers movie queries with grounded suggestions
type RecommendationService interface {
	Recommend(ctx context.Context, query string) (*dto.RecommendationsResponse, error)
}

// ExchangeService exposes recorded history
type ExchangeService interface {
	List(ctx context.Context, query dto.ListExchangesQuery) (*dto.PaginatedExchangesResponse, error)
}
