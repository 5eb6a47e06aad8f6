package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mhindle4/marty-backend/application/ports/inbound"
	"github.com/mhindle4/marty-backend/application/ports/outbound"
	"github.com/mhindle4/marty-backend/domain"
	"github.com/mhindle4/marty-backend/infrastructure/gin_interface/dto"
)

const noMessageError = "No message provided"

type ChatController interface {
	Chat(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type chatController struct {
	logger       outbound.LoggerPort
	orchestrator inbound.ChatOrchestratorPort
}

func NewChatController(logger outbound.LoggerPort, orchestrator inbound.ChatOrchestratorPort) ChatController {
	return &chatController{
		logger:       logger,
		orchestrator: orchestrator,
	}
}

// Chat handles POST /chat. A missing body, malformed JSON, or a blank
// message all map to the same 400; everything else is a 200, even when the
// audio step degraded.
func (cc *chatController) Chat(c *gin.Context) {
	var chatRequest dto.ChatRequest
	if err := c.ShouldBindJSON(&chatRequest); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: noMessageError})
		return
	}

	reply, err := cc.orchestrator.HandleChat(c.Request.Context(), inbound.HandleChatParams{
		Message: chatRequest.Message,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: noMessageError})
			return
		}
		cc.logger.Error(err, "Unexpected orchestrator failure")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
		return
	}

	response := dto.ChatResponse{Text: reply.Text}
	if reply.HasAudio() {
		audioURL := reply.AudioURL
		response.AudioUrl = &audioURL
	}

	c.JSON(http.StatusOK, response)
}

func (cc *chatController) RegisterRoutes(g *gin.Engine) {
	g.POST("/chat", cc.Chat)
}
