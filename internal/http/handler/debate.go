package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gascenciom1998/debater/internal/debate"
	"github.com/gascenciom1998/debater/internal/http/dto"
	"github.com/gascenciom1998/debater/internal/service"
	"github.com/gascenciom1998/debater/internal/store"
)

type DebateHandler struct {
	debateService service.DebateService
}

func NewDebateHandler(debateService service.DebateService) *DebateHandler {
	return &DebateHandler{debateService: debateService}
}

func (h *DebateHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message must not be blank"})
		return
	}

	result, err := h.debateService.Chat(ctx, req.ConversationID, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		case errors.Is(err, debate.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "text generation service not configured"})
		default:
			slog.ErrorContext(ctx, "chat turn failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process message"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChatResponse(result))
}

func (h *DebateHandler) Evaluate(c *gin.Context) {
	ctx := c.Request.Context()
	conversationID := c.Param("conversation_id")

	result, err := h.debateService.Evaluate(ctx, conversationID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		case errors.Is(err, debate.ErrNoAgentMessages):
			// Structured "no data" result, not an internal failure.
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  "no agent messages found in conversation",
				"scores": nil,
			})
		case errors.Is(err, debate.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "text generation service not configured"})
		default:
			slog.ErrorContext(ctx, "evaluation failed", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "evaluation failed", "scores": nil})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEvaluationResponse(result))
}

func (h *DebateHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	conversationID := c.Param("conversation_id")

	// Idempotent: deleting an absent conversation is still a 204.
	if err := h.debateService.Delete(ctx, conversationID); err != nil {
		slog.ErrorContext(ctx, "delete failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete conversation"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *DebateHandler) Health(c *gin.Context) {
	health := h.debateService.Health(c.Request.Context())

	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: health.Status,
		Redis:  health.Redis,
	})
}
