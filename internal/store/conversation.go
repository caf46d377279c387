package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gascenciom1998/debater/internal/model"
)

type redisConversationStore struct {
	client      *redis.Client
	ttl         time.Duration
	maxMessages int
}

// NewConversationStore creates a ConversationStore on Redis. ttl applies to
// both the metadata record (absolute) and the message log (sliding);
// maxMessages is the retention cap enforced on every append.
func NewConversationStore(client *redis.Client, ttl time.Duration, maxMessages int) ConversationStore {
	return &redisConversationStore{
		client:      client,
		ttl:         ttl,
		maxMessages: maxMessages,
	}
}

func metadataKey(id string) string { return "conversation:" + id }
func messagesKey(id string) string { return "messages:" + id }

func (s *redisConversationStore) Create(ctx context.Context, topic, agentStance, counterpartStance, openingUtterance string) (string, error) {
	meta := model.Metadata{
		ID:                uuid.NewString(),
		Topic:             topic,
		AgentStance:       agentStance,
		CounterpartStance: counterpartStance,
		OpeningUtterance:  openingUtterance,
		CreatedAt:         time.Now().UTC(),
	}

	data, err := json.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshal metadata: %w", err)
	}

	if err := s.client.Set(ctx, metadataKey(meta.ID), data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("persist metadata: %w", err)
	}

	if err := s.AppendMessage(ctx, meta.ID, model.RoleUser, openingUtterance); err != nil {
		return "", fmt.Errorf("append opening message: %w", err)
	}

	slog.InfoContext(ctx, "conversation created", "conversation_id", meta.ID, "topic", topic)
	return meta.ID, nil
}

func (s *redisConversationStore) GetMetadata(ctx context.Context, id string) (*model.Metadata, error) {
	data, err := s.client.Get(ctx, metadataKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read metadata: %w", err)
	}

	var meta model.Metadata
	if err := json.Unmarshal([]byte(data), &meta); err != nil {
		return nil, fmt.Errorf("decode metadata: %w", err)
	}
	return &meta, nil
}

func (s *redisConversationStore) AppendMessage(ctx context.Context, id string, role model.Role, content string) error {
	msg := model.Message{
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	key := messagesKey(id)
	// Trim after every push so no reader ever observes more than the cap,
	// and slide the log expiry forward.
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		pipe.LTrim(ctx, key, int64(-s.maxMessages), -1)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	return nil
}

func (s *redisConversationStore) GetMessages(ctx context.Context, id string) ([]model.Message, error) {
	entries, err := s.client.LRange(ctx, messagesKey(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("read messages: %w", err)
	}

	messages := make([]model.Message, 0, len(entries))
	for _, entry := range entries {
		var msg model.Message
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			return nil, fmt.Errorf("decode message: %w", err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (s *redisConversationStore) Get(ctx context.Context, id string) (*model.Conversation, error) {
	meta, err := s.GetMetadata(ctx, id)
	if err != nil {
		return nil, err
	}

	messages, err := s.GetMessages(ctx, id)
	if err != nil {
		return nil, err
	}

	return &model.Conversation{
		Metadata: *meta,
		Messages: messages,
	}, nil
}

func (s *redisConversationStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, metadataKey(id), messagesKey(id)).Err(); err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	return nil
}

func (s *redisConversationStore) HealthCheck(ctx context.Context) bool {
	if err := s.client.Ping(ctx).Err(); err != nil {
		slog.WarnContext(ctx, "redis health check failed", "error", err)
		return false
	}
	return true
}
