package routes

import (
	"github.com/gin-gonic/gin"

	"cinevoice/internal/api/v1/handlers"
	"cinevoice/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	ConversationService   services.ConversationService
	RecommendationService services.RecommendationService
	ExchangeService       services.ExchangeService
}

// RegisterRootRoutes registers the unversioned endpoints at the server root.
// The trailing slashes are part of the public contract.
func RegisterRootRoutes(router *gin.Engine, container *ServiceContainer) {
	conversationHandler := handlers.NewConversationHandler(container.ConversationService)
	router.POST("/send_audio/", conversationHandler.SendAudio)

	moviesHandler := handlers.NewMoviesHandler(container.RecommendationService)
	router.GET("/movies/", moviesHandler.List)
}

// RegisterRoutes registers versioned API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	if container.ExchangeService != nil {
		exchangesHandler := handlers.NewExchangesHandler(container.ExchangeService)
		router.GET("/exchanges", exchangesHandler.List)
	}
}
