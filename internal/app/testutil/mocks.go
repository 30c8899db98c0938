package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"cinevoice/internal/api/v1/dto"
	"cinevoice/internal/api/v1/services"
	"cinevoice/internal/app/assistant"
	"cinevoice/internal/app/model"
)

// MockAssistant is a testify mock for the vendor assistant
type MockAssistant struct {
	mock.Mock
}

func (m *MockAssistant) RespondToAudio(ctx context.Context, audio []byte, mimeType string) (*assistant.AudioReply, error) {
	args := m.Called(ctx, audio, mimeType)
	if reply := args.Get(0); reply != nil {
		return reply.(*assistant.AudioReply), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssistant) RecommendMovies(ctx context.Context, query string) ([]model.Recommendation, error) {
	args := m.Called(ctx, query)
	if recs := args.Get(0); recs != nil {
		return recs.([]model.Recommendation), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockAssistant) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	args := m.Called(ctx, audio, mimeType)
	return args.String(0), args.Error(1)
}

// MockConversationService is a testify mock for the conversation service
type MockConversationService struct {
	mock.Mock
}

func (m *MockConversationService) HandleAudio(ctx context.Context, audio []byte, originalName string) (*services.ConversationResult, error) {
	args := m.Called(ctx, audio, originalName)
	if result := args.Get(0); result != nil {
		return result.(*services.ConversationResult), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRecommendationService is a testify mock for the recommendation service
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, query string) (*dto.RecommendationsResponse, error) {
	args := m.Called(ctx, query)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.RecommendationsResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockExchangeService is a testify mock for the exchange history service
type MockExchangeService struct {
	mock.Mock
}

func (m *MockExchangeService) List(ctx context.Context, query dto.ListExchangesQuery) (*dto.PaginatedExchangesResponse, error) {
	args := m.Called(ctx, query)
	if resp := args.Get(0); resp != nil {
		return resp.(*dto.PaginatedExchangesResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockServices bundles all service mocks for handler tests
type MockServices struct {
	Conversation   *MockConversationService
	Recommendation *MockRecommendationService
	Exchange       *MockExchangeService
}

// NewMockServices creates mocks with assertions registered on t
func NewMockServices(t *testing.T) *MockServices {
	ms := &MockServices{
		Conversation:   &MockConversationService{},
		Recommendation: &MockRecommendationService{},
		Exchange:       &MockExchangeService{},
	}
	t.Cleanup(func() {
		ms.Conversation.AssertExpectations(t)
		ms.Recommendation.AssertExpectations(t)
		ms.Exchange.AssertExpectations(t)
	})
	return ms
}
