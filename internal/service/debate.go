package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gascenciom1998/debater/common/logger"
	"github.com/gascenciom1998/debater/internal/debate"
	"github.com/gascenciom1998/debater/internal/model"
	"github.com/gascenciom1998/debater/internal/store"
)

// StanceResolver derives the debate setup from an opening utterance.
type StanceResolver interface {
	Resolve(ctx context.Context, openingUtterance string) (*debate.StanceResolution, error)
}

// ArgumentGenerator produces agent utterances. Both methods always return
// usable text; generation failures are masked by templated fallbacks.
type ArgumentGenerator interface {
	Opening(ctx context.Context, topic, agentStance string) string
	Reply(ctx context.Context, topic, agentStance string, history []model.Message) string
}

// PersuasivenessScorer evaluates the agent's side of a transcript.
type PersuasivenessScorer interface {
	Evaluate(ctx context.Context, transcript []model.Message, topic, agentStance string) (*model.ScoreReport, error)
}

// TurnResult is the outcome of one chat turn.
type TurnResult struct {
	ConversationID string
	Messages       []model.Message
}

// EvaluationResult is the outcome of a persuasiveness evaluation.
type EvaluationResult struct {
	ConversationID string
	Topic          string
	AgentStance    string
	MessageCount   int
	Report         *model.ScoreReport
}

// HealthStatus is the service health surface: "healthy" when everything is
// reachable and configured, "degraded" otherwise. Never an error.
type HealthStatus struct {
	Status string
	Redis  bool
}

// DebateService orchestrates the conversation lifecycle: a turn without a
// conversation id starts a debate (stance resolution, creation, opening), a
// turn with one continues it (append, reply, append). Continuing an unknown
// id is a NotFound condition, never an implicit recreation.
type DebateService interface {
	Chat(ctx context.Context, conversationID *string, message string) (*TurnResult, error)
	Evaluate(ctx context.Context, conversationID string) (*EvaluationResult, error)
	Delete(ctx context.Context, conversationID string) error
	Health(ctx context.Context) HealthStatus
}

type debateService struct {
	conversations store.ConversationStore
	resolver      StanceResolver
	generator     ArgumentGenerator
	scorer        PersuasivenessScorer
	// responseWindow bounds the transcript returned from a continue turn; it
	// is a response-shaping policy distinct from the store's retention cap.
	responseWindow int
	// generationEnabled feeds the health surface; per-request configuration
	// errors come from the components themselves.
	generationEnabled bool
}

type DebateServiceConfig struct {
	Conversations     store.ConversationStore
	Resolver          StanceResolver
	Generator         ArgumentGenerator
	Scorer            PersuasivenessScorer
	ResponseWindow    int
	GenerationEnabled bool
}

func NewDebateService(cfg DebateServiceConfig) DebateService {
	return &debateService{
		conversations:     cfg.Conversations,
		resolver:          cfg.Resolver,
		generator:         cfg.Generator,
		scorer:            cfg.Scorer,
		responseWindow:    cfg.ResponseWindow,
		generationEnabled: cfg.GenerationEnabled,
	}
}

func (s *debateService) Chat(ctx context.Context, conversationID *string, message string) (*TurnResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "debater.service.chat"})

	if conversationID == nil || *conversationID == "" {
		return s.startConversation(ctx, message)
	}
	return s.continueConversation(ctx, *conversationID, message)
}

func (s *debateService) startConversation(ctx context.Context, message string) (*TurnResult, error) {
	resolution, err := s.resolver.Resolve(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("starting conversation: %w", err)
	}

	id, err := s.conversations.Create(ctx, resolution.Topic, resolution.AgentStance, resolution.CounterpartStance, message)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create conversation", "error", err)
		return nil, fmt.Errorf("starting conversation: %w", err)
	}
	ctx = logger.WithLogFields(ctx, logger.LogFields{ConversationID: logger.Ptr(id)})

	opening := s.generator.Opening(ctx, resolution.Topic, resolution.AgentStance)
	if err := s.conversations.AppendMessage(ctx, id, model.RoleAgent, opening); err != nil {
		slog.ErrorContext(ctx, "failed to append opening", "error", err)
		return nil, fmt.Errorf("starting conversation: %w", err)
	}

	messages, err := s.conversations.GetMessages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("starting conversation: %w", err)
	}

	slog.InfoContext(ctx, "conversation started",
		"topic", resolution.Topic,
		"agent_stance", resolution.AgentStance,
	)
	return &TurnResult{ConversationID: id, Messages: messages}, nil
}

func (s *debateService) continueConversation(ctx context.Context, id, message string) (*TurnResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{ConversationID: logger.Ptr(id)})

	// Metadata absence is authoritative; an expired conversation is simply
	// not found, never silently recreated.
	meta, err := s.conversations.GetMetadata(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("continuing conversation: %w", err)
	}

	if err := s.conversations.AppendMessage(ctx, id, model.RoleUser, message); err != nil {
		slog.ErrorContext(ctx, "failed to append user message", "error", err)
		return nil, fmt.Errorf("continuing conversation: %w", err)
	}

	history, err := s.conversations.GetMessages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("continuing conversation: %w", err)
	}

	// The stance fixed at creation drives every reply; the generator windows
	// the history internally.
	reply := s.generator.Reply(ctx, meta.Topic, meta.AgentStance, history)
	if err := s.conversations.AppendMessage(ctx, id, model.RoleAgent, reply); err != nil {
		slog.ErrorContext(ctx, "failed to append reply", "error", err)
		return nil, fmt.Errorf("continuing conversation: %w", err)
	}

	messages, err := s.conversations.GetMessages(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("continuing conversation: %w", err)
	}

	slog.InfoContext(ctx, "turn completed", "message_count", len(messages))
	return &TurnResult{ConversationID: id, Messages: window(messages, s.responseWindow)}, nil
}

func (s *debateService) Evaluate(ctx context.Context, conversationID string) (*EvaluationResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ConversationID: logger.Ptr(conversationID),
		Component:      "debater.service.evaluate",
	})

	conv, err := s.conversations.Get(ctx, conversationID)
	if err != nil {
		return nil, fmt.Errorf("evaluating conversation: %w", err)
	}

	report, err := s.scorer.Evaluate(ctx, conv.Messages, conv.Topic, conv.AgentStance)
	if err != nil {
		return nil, fmt.Errorf("evaluating conversation: %w", err)
	}

	return &EvaluationResult{
		ConversationID: conv.ID,
		Topic:          conv.Topic,
		AgentStance:    conv.AgentStance,
		MessageCount:   len(conv.Messages),
		Report:         report,
	}, nil
}

func (s *debateService) Delete(ctx context.Context, conversationID string) error {
	if err := s.conversations.Delete(ctx, conversationID); err != nil {
		slog.ErrorContext(ctx, "failed to delete conversation", "error", err, "conversation_id", conversationID)
		return fmt.Errorf("deleting conversation: %w", err)
	}
	return nil
}

func (s *debateService) Health(ctx context.Context) HealthStatus {
	redisOK := s.conversations.HealthCheck(ctx)

	status := "healthy"
	if !redisOK || !s.generationEnabled {
		status = "degraded"
	}
	return HealthStatus{Status: status, Redis: redisOK}
}

// window returns the most recent n messages, oldest first.
func window(messages []model.Message, n int) []model.Message {
	if n <= 0 || len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}
