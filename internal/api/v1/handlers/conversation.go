package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinevoice/internal/api/errors"
	"cinevoice/internal/api/middleware"
	"cinevoice/internal/api/v1/dto"
	"cinevoice/internal/api/v1/services"
)

// ConversationHandler handles the audio exchange endpoint
type ConversationHandler struct {
	service services.ConversationService
}

// NewConversationHandler creates a new conversation handler
func NewConversationHandler(service services.ConversationService) *ConversationHandler {
	return &ConversationHandler{service: service}
}

// SendAudio handles POST /send_audio/.
// Accepts a multipart `audio` field and replies with synthesized speech,
// or a JSON text reply when no audio could be synthesized.
func (h *ConversationHandler) SendAudio(c *gin.Context) {
	fileHeader, err := middleware.RequireFormFile(c, "audio")
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Failed to open uploaded file"))
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		middleware.HandleError(c, errors.NewBadRequestError("Failed to read uploaded file"))
		return
	}
	if len(audio) == 0 {
		middleware.HandleError(c, errors.NewBadRequestError("Uploaded audio file is empty"))
		return
	}

	result, err := h.service.HandleAudio(c.Request.Context(), audio, fileHeader.Filename)
	if err != nil {
		middleware.HandleError(c, errors.NewInternalError(err.Error()))
		return
	}

	if len(result.Audio) > 0 {
		c.Data(http.StatusOK, "audio/mpeg", result.Audio)
		return
	}

	c.JSON(http.StatusOK, dto.TextReplyResponse{Response: result.Text})
}
