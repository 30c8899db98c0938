package test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cinevoice/internal/api/v1/dto"
	"cinevoice/internal/api/v1/handlers"
	"cinevoice/internal/app/testutil"
)

func setupExchangesRouter(t *testing.T) (*gin.Engine, *testutil.MockServices) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	mockServices := testutil.NewMockServices(t)
	handler := handlers.NewExchangesHandler(mockServices.Exchange)
	router.GET("/api/v1/exchanges", handler.List)

	return router, mockServices
}

func TestExchangesList(t *testing.T) {
	router, mockServices := setupExchangesRouter(t)

	mockServices.Exchange.On("List", mock.Anything, mock.MatchedBy(func(q dto.ListExchangesQuery) bool {
		return q.Limit == 20 && q.Offset == 0
	})).Return(&dto.PaginatedExchangesResponse{
		Exchanges: []dto.ExchangeResponse{
			{ID: 1, CreatedAt: time.Now().UTC(), Provider: "gemini", LatencyMs: 900},
		},
		Total: 1,
		Limit: 20,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exchanges", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-Total-Count"))

	var body dto.PaginatedExchangesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Exchanges, 1)
	assert.Equal(t, "gemini", body.Exchanges[0].Provider)
}

func TestExchangesListInvalidLimit(t *testing.T) {
	router, _ := setupExchangesRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exchanges?limit=500", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExchangesListCustomPage(t *testing.T) {
	router, mockServices := setupExchangesRouter(t)

	mockServices.Exchange.On("List", mock.Anything, mock.MatchedBy(func(q dto.ListExchangesQuery) bool {
		return q.Limit == 5 && q.Offset == 10
	})).Return(&dto.PaginatedExchangesResponse{Exchanges: []dto.ExchangeResponse{}, Total: 0, Limit: 5, Offset: 10}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/exchanges?limit=5&offset=10", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
