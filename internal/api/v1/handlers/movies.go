package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cinevoice/internal/api/errors"
	"cinevoice/internal/api/middleware"
	"cinevoice/internal/api/v1/dto"
	"cinevoice/internal/api/v1/services"
)

// MoviesHandler serves grounded movie recommendations
type MoviesHandler struct {
	service services.RecommendationService
}

func NewMoviesHandler(service services.RecommendationService) *MoviesHandler {
	return &MoviesHandler{service: service}
}

// List handles GET /movies/
func (h *MoviesHandler) List(c *gin.Context) {
	var query dto.RecommendationsQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.Recommend(c.Request.Context(), query.Query)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, response)
}
