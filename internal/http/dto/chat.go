package dto

import (
	"github.com/gascenciom1998/debater/internal/model"
	"github.com/gascenciom1998/debater/internal/service"
)

type ChatRequest struct {
	ConversationID *string `json:"conversation_id,omitempty"`
	Message        string  `json:"message" binding:"required"`
}

// MessageResponse is the wire shape of a message. Role is exactly "user" or
// "agent".
type MessageResponse struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	ConversationID string            `json:"conversation_id"`
	Messages       []MessageResponse `json:"messages"`
}

func ToChatResponse(result *service.TurnResult) *ChatResponse {
	messages := make([]MessageResponse, len(result.Messages))
	for i, msg := range result.Messages {
		messages[i] = MessageResponse{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	return &ChatResponse{
		ConversationID: result.ConversationID,
		Messages:       messages,
	}
}

type EvaluationResponse struct {
	ConversationID string             `json:"conversation_id"`
	Topic          string             `json:"topic"`
	AgentStance    string             `json:"agent_stance"`
	MessageCount   int                `json:"message_count"`
	Evaluation     *model.ScoreReport `json:"evaluation"`
}

func ToEvaluationResponse(result *service.EvaluationResult) *EvaluationResponse {
	return &EvaluationResponse{
		ConversationID: result.ConversationID,
		Topic:          result.Topic,
		AgentStance:    result.AgentStance,
		MessageCount:   result.MessageCount,
		Evaluation:     result.Report,
	}
}

type HealthResponse struct {
	Status string `json:"status"`
	Redis  bool   `json:"redis"`
}
