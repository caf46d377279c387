package handler_test

import (
	"context"

	"github.com/gascenciom1998/debater/internal/service"
)

type mockDebateService struct {
	chatFn     func(ctx context.Context, conversationID *string, message string) (*service.TurnResult, error)
	evaluateFn func(ctx context.Context, conversationID string) (*service.EvaluationResult, error)
	deleteFn   func(ctx context.Context, conversationID string) error
	healthFn   func(ctx context.Context) service.HealthStatus
}

func (m *mockDebateService) Chat(ctx context.Context, conversationID *string, message string) (*service.TurnResult, error) {
	if m.chatFn != nil {
		return m.chatFn(ctx, conversationID, message)
	}
	return &service.TurnResult{}, nil
}

func (m *mockDebateService) Evaluate(ctx context.Context, conversationID string) (*service.EvaluationResult, error) {
	if m.evaluateFn != nil {
		return m.evaluateFn(ctx, conversationID)
	}
	return &service.EvaluationResult{}, nil
}

func (m *mockDebateService) Delete(ctx context.Context, conversationID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, conversationID)
	}
	return nil
}

func (m *mockDebateService) Health(ctx context.Context) service.HealthStatus {
	if m.healthFn != nil {
		return m.healthFn(ctx)
	}
	return service.HealthStatus{Status: "healthy", Redis: true}
}
