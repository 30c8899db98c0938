package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"cinevoice/internal/api/middleware"
	"cinevoice/internal/app/assistant"
	"cinevoice/internal/app/media"
	"cinevoice/internal/app/metrics"
	"cinevoice/internal/app/model"
	"cinevoice/internal/app/repository"
)

type conversationService struct {
	assistant assistant.Assistant
	store     media.Store
	dao       repository.ExchangeDAO
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewConversationService wires the audio exchange pipeline
func NewConversationService(
	a assistant.Assistant,
	store media.Store,
	dao repository.ExchangeDAO,
	m *metrics.Metrics,
	logger *zap.Logger,
) ConversationService {
	return &conversationService{
		assistant: a,
		store:     store,
		dao:       dao,
		metrics:   m,
		logger:    logger,
	}
}

func (s *conversationService) HandleAudio(ctx context.Context, audio []byte, originalName string) (*ConversationResult, error) {
	start := time.Now()

	s.metrics.UploadsReceived.Inc()
	s.metrics.UploadBytes.Observe(float64(len(audio)))

	uploadPath, err := s.store.SaveUpload(ctx, audio, originalName)
	if err != nil {
		// Archival failure should not lose the request
		s.logger.Error("failed to archive upload", zap.Error(err))
	}

	exchange := &model.Exchange{
		CreatedAt:  time.Now().UTC(),
		UploadPath: uploadPath,
		Provider:   "gemini",
	}

	reply, err := s.assistant.RespondToAudio(ctx, audio, "audio/mpeg")
	exchange.LatencyMs = time.Since(start).Milliseconds()

	if err != nil {
		exchange.ErrorMessage = err.Error()
		s.record(exchange)
		s.logger.Error("audio exchange failed",
			zap.String("request_id", middleware.RequestIDFromContext(ctx)),
			zap.Error(err))
		return nil, fmt.Errorf("audio processing failed: %w", err)
	}

	exchange.Transcript = reply.Transcript
	exchange.ReplyText = reply.Text

	if len(reply.Audio) > 0 {
		responsePath, err := s.store.SaveResponse(ctx, reply.Audio, ".mp3")
		if err != nil {
			s.logger.Error("failed to archive response", zap.Error(err))
		}
		exchange.ResponsePath = responsePath
		s.metrics.ResponsesServed.Inc()
	}

	s.metrics.ExchangeDuration.Observe(time.Since(start).Seconds())
	s.record(exchange)

	return &ConversationResult{
		Audio:      reply.Audio,
		MIMEType:   reply.MIMEType,
		Text:       reply.Text,
		Transcript: reply.Transcript,
	}, nil
}

func (s *conversationService) record(exchange *model.Exchange) {
	if _, err := s.dao.Record(exchange); err != nil {
		s.logger.Error("failed to record exchange", zap.Error(err))
	}
}
