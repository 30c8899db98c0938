package test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cinevoice/internal/api/v1/dto"
	"cinevoice/internal/api/v1/handlers"
	"cinevoice/internal/app/model"
	"cinevoice/internal/app/testutil"
)

func setupMoviesRouter(t *testing.T) (*gin.Engine, *testutil.MockServices) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	mockServices := testutil.NewMockServices(t)
	handler := handlers.NewMoviesHandler(mockServices.Recommendation)
	router.GET("/movies/", handler.List)

	return router, mockServices
}

func TestMoviesList(t *testing.T) {
	router, mockServices := setupMoviesRouter(t)

	mockServices.Recommendation.On("Recommend", mock.Anything, "space operas").
		Return(&dto.RecommendationsResponse{
			Query: "space operas",
			Movies: []model.Recommendation{
				{Title: "Dune", Year: 2021, Reason: "sweeping sci-fi epic"},
			},
			Summary: "Dune (2021): sweeping sci-fi epic",
		}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies/?query=space+operas", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body dto.RecommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Movies, 1)
	assert.Equal(t, "Dune", body.Movies[0].Title)
	assert.Equal(t, 2021, body.Movies[0].Year)
}

func TestMoviesListEmptyQuery(t *testing.T) {
	router, mockServices := setupMoviesRouter(t)

	mockServices.Recommendation.On("Recommend", mock.Anything, "").
		Return(&dto.RecommendationsResponse{Movies: []model.Recommendation{{Title: "Heat"}}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies/", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMoviesListServiceError(t *testing.T) {
	router, mockServices := setupMoviesRouter(t)

	mockServices.Recommendation.On("Recommend", mock.Anything, mock.Anything).
		Return(nil, errors.New("recommendation call failed"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/movies/?query=anything", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "recommendation")
}
