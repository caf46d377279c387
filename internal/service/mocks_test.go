package service_test

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/gascenciom1998/debater/internal/debate"
	"github.com/gascenciom1998/debater/internal/model"
	"github.com/gascenciom1998/debater/internal/store"
)

// memoryStore is an in-memory ConversationStore double. Function fields
// override individual operations when a test needs a failure.
type memoryStore struct {
	metadata map[string]model.Metadata
	messages map[string][]model.Message

	createFn      func(ctx context.Context, topic, agentStance, counterpartStance, openingUtterance string) (string, error)
	appendFn      func(ctx context.Context, id string, role model.Role, content string) error
	healthCheckFn func(ctx context.Context) bool
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		metadata: make(map[string]model.Metadata),
		messages: make(map[string][]model.Message),
	}
}

func (m *memoryStore) Create(ctx context.Context, topic, agentStance, counterpartStance, openingUtterance string) (string, error) {
	if m.createFn != nil {
		return m.createFn(ctx, topic, agentStance, counterpartStance, openingUtterance)
	}
	id := uuid.NewString()
	m.metadata[id] = model.Metadata{
		ID:                id,
		Topic:             topic,
		AgentStance:       agentStance,
		CounterpartStance: counterpartStance,
		OpeningUtterance:  openingUtterance,
	}
	if err := m.AppendMessage(ctx, id, model.RoleUser, openingUtterance); err != nil {
		return "", err
	}
	return id, nil
}

func (m *memoryStore) GetMetadata(_ context.Context, id string) (*model.Metadata, error) {
	meta, ok := m.metadata[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &meta, nil
}

func (m *memoryStore) AppendMessage(ctx context.Context, id string, role model.Role, content string) error {
	if m.appendFn != nil {
		return m.appendFn(ctx, id, role, content)
	}
	msgs := append(m.messages[id], model.Message{Role: role, Content: content})
	if len(msgs) > 50 {
		msgs = msgs[len(msgs)-50:]
	}
	m.messages[id] = msgs
	return nil
}

func (m *memoryStore) GetMessages(_ context.Context, id string) ([]model.Message, error) {
	return m.messages[id], nil
}

func (m *memoryStore) Get(ctx context.Context, id string) (*model.Conversation, error) {
	meta, err := m.GetMetadata(ctx, id)
	if err != nil {
		return nil, err
	}
	return &model.Conversation{Metadata: *meta, Messages: m.messages[id]}, nil
}

func (m *memoryStore) Delete(_ context.Context, id string) error {
	delete(m.metadata, id)
	delete(m.messages, id)
	return nil
}

func (m *memoryStore) HealthCheck(ctx context.Context) bool {
	if m.healthCheckFn != nil {
		return m.healthCheckFn(ctx)
	}
	return true
}

type mockResolver struct {
	resolveFn func(ctx context.Context, openingUtterance string) (*debate.StanceResolution, error)
}

func (m *mockResolver) Resolve(ctx context.Context, openingUtterance string) (*debate.StanceResolution, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, openingUtterance)
	}
	return &debate.StanceResolution{
		Topic:             "earth shape",
		AgentStance:       "the earth is flat",
		CounterpartStance: "the earth is round",
	}, nil
}

// mockGenerator records the stances it was asked to defend.
type mockGenerator struct {
	openingStances []string
	replyStances   []string
	replyHistories [][]model.Message
}

func (m *mockGenerator) Opening(_ context.Context, _, agentStance string) string {
	m.openingStances = append(m.openingStances, agentStance)
	return fmt.Sprintf("Opening defending: %s", agentStance)
}

func (m *mockGenerator) Reply(_ context.Context, _, agentStance string, history []model.Message) string {
	m.replyStances = append(m.replyStances, agentStance)
	m.replyHistories = append(m.replyHistories, history)
	return fmt.Sprintf("Reply defending: %s", agentStance)
}

type mockScorer struct {
	evaluateFn func(ctx context.Context, transcript []model.Message, topic, agentStance string) (*model.ScoreReport, error)
}

func (m *mockScorer) Evaluate(ctx context.Context, transcript []model.Message, topic, agentStance string) (*model.ScoreReport, error) {
	if m.evaluateFn != nil {
		return m.evaluateFn(ctx, transcript, topic, agentStance)
	}
	return &model.ScoreReport{Summary: "ok"}, nil
}
