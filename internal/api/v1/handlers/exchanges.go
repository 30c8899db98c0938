package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"cinevoice/internal/api/errors"
	"cinevoice/internal/api/middleware"
	"cinevoice/internal/api/v1/dto"
	"cinevoice/internal/api/v1/services"
)

// ExchangesHandler exposes exchange history
type ExchangesHandler struct {
	service services.ExchangeService
}

func NewExchangesHandler(service services.ExchangeService) *ExchangesHandler {
	return &ExchangesHandler{service: service}
}

// List handles GET /api/v1/exchanges
func (h *ExchangesHandler) List(c *gin.Context) {
	var query dto.ListExchangesQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}

	response, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError(err.Error()))
		return
	}

	c.Header("X-Total-Count", strconv.Itoa(response.Total))
	c.JSON(http.StatusOK, response)
}
