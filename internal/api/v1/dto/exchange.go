package dto

import (
	"time"

	"cinevoice/internal/api/errors"
	"cinevoice/internal/app/model"
)

// ListExchangesQuery paginates exchange history
type ListExchangesQuery struct {
	Limit  int `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"omitempty,min=0"`
}

// Validate applies domain rules after binding
func (q *ListExchangesQuery) Validate() error {
	if q.Limit == 0 {
		q.Limit = 20
	}
	if q.Limit < 0 || q.Limit > 100 {
		return errors.NewValidationError("Invalid query parameters",
			map[string]string{"limit": "must be between 1 and 100"})
	}
	if q.Offset < 0 {
		return errors.NewValidationError("Invalid query parameters",
			map[string]string{"offset": "must not be negative"})
	}
	return nil
}

// ExchangeResponse is one history entry
type ExchangeResponse struct {
	ID           int       `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UploadPath   string    `json:"upload_path"`
	ResponsePath string    `json:"response_path,omitempty"`
	Transcript   string    `json:"transcript,omitempty"`
	ReplyText    string    `json:"reply_text,omitempty"`
	Provider     string    `json:"provider"`
	LatencyMs    int64     `json:"latency_ms"`
	Error        string    `json:"error,omitempty"`
}

// PaginatedExchangesResponse wraps a history page
type PaginatedExchangesResponse struct {
	Exchanges []ExchangeResponse `json:"exchanges"`
	Total     int                `json:"total"`
	Limit     int                `json:"limit"`
	Offset    int                `json:"offset"`
}

// FromModel converts a history record to its API shape
func FromModel(e model.Exchange) ExchangeResponse {
	return ExchangeResponse{
		ID:           e.ID,
		CreatedAt:    e.CreatedAt,
		UploadPath:   e.UploadPath,
		ResponsePath: e.ResponsePath,
		Transcript:   e.Transcript,
		ReplyText:    e.ReplyText,
		Provider:     e.Provider,
		LatencyMs:    e.LatencyMs,
		Error:        e.ErrorMessage,
	}
}
