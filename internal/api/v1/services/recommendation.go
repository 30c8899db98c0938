package services

import (
	"context"
	"strings"

	"cinevoice/internal/api/v1/dto"
	"cinevoice/internal/app/assistant"
)

type recommendationService struct {
	assistant assistant.Assistant
}

// NewRecommendationService serves grounded movie suggestions
func NewRecommendationService(a assistant.Assistant) RecommendationService {
	return &recommendationService{assistant: a}
}

func (s *recommendationService) Recommend(ctx context.Context, query string) (*dto.RecommendationsResponse, error) {
	if strings.TrimSpace(query) == "" {
		query = assistant.DefaultRecommendationQuery
	}

	movies, err := s.assistant.RecommendMovies(ctx, query)
	if err != nil {
		return nil, err
	}

	return &dto.RecommendationsResponse{
		Query:   query,
		Movies:  movies,
		Summary: assistant.FormatRecommendations(movies),
	}, nil
}
