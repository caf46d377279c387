package model

import "time"

// Role identifies the author of a message. Exactly two variants exist.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Message is one utterance within a conversation. Ordering is strictly the
// append order; messages carry no identifier beyond their position.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Metadata is the immutable per-conversation record written at creation.
// AgentStance never changes for the life of the conversation; every agent
// utterance is generated under it.
type Metadata struct {
	ID                string    `json:"id"`
	Topic             string    `json:"topic"`
	AgentStance       string    `json:"agent_stance"`
	CounterpartStance string    `json:"counterpart_stance"`
	OpeningUtterance  string    `json:"opening_utterance"`
	CreatedAt         time.Time `json:"created_at"`
}

// Conversation is metadata plus the ordered message log.
type Conversation struct {
	Metadata
	Messages []Message `json:"messages"`
}
