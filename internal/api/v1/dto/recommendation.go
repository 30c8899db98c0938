package dto

import "cinevoice/internal/app/model"

// RecommendationsQuery carries the movie request text
type RecommendationsQuery struct {
	Query string `form:"query" binding:"omitempty,max=500"`
}

// RecommendationsResponse lists grounded movie suggestions
type RecommendationsResponse struct {
	Query   string                 `json:"query"`
	Movies  []model.Recommendation `json:"movies"`
	Summary string                 `json:"summary"`
}
