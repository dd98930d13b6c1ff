package handler

import (
	"net/http"

	"github.com/gdugdh24/creatormatch-backend/internal/usecase/assistant"
	"github.com/gin-gonic/gin"
)

type AssistantHandler struct {
	assistantUseCase *assistant.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase *assistant.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
	}
}

// Chat handles POST /assistant/chat
// @Summary Chat with the assistant
// @Tags assistant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body assistant.ChatRequest true "Message and history"
// @Success 200 {object} assistant.ChatResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /assistant/chat [post]
func (h *AssistantHandler) Chat(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}

	var req assistant.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	reply, err := h.assistantUseCase.Chat(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err, "assistant failed")
		return
	}

	c.JSON(http.StatusOK, reply)
}
