package store

import (
	"context"
	"errors"

	"github.com/gascenciom1998/debater/internal/model"
)

// ErrNotFound is returned when a requested conversation does not exist
var ErrNotFound = errors.New("not found")

// ConversationStore defines the contract for conversation persistence.
//
// A conversation is stored as two records with independent expiries: an
// immutable metadata record with an absolute TTL from creation, and a bounded
// message log whose TTL slides forward on every append. The split means a log
// can in principle outlive its metadata (or the reverse); metadata absence is
// authoritative, so Get reports ErrNotFound regardless of log state.
type ConversationStore interface {
	// Create allocates a fresh identifier, persists the metadata record, and
	// appends the opening utterance as the first user message.
	Create(ctx context.Context, topic, agentStance, counterpartStance, openingUtterance string) (string, error)

	// GetMetadata returns ErrNotFound for unknown or expired conversations.
	GetMetadata(ctx context.Context, id string) (*model.Metadata, error)

	// AppendMessage appends to the message log, slides the log TTL forward,
	// and trims the log to the retention cap.
	AppendMessage(ctx context.Context, id string, role model.Role, content string) error

	// GetMessages returns the ordered log, oldest first. An absent or expired
	// log yields an empty slice, not an error.
	GetMessages(ctx context.Context, id string) ([]model.Message, error)

	// Get composes metadata and messages. ErrNotFound if metadata is absent,
	// irrespective of message-log state.
	Get(ctx context.Context, id string) (*model.Conversation, error)

	// Delete removes both records. Deleting an absent id is not an error.
	Delete(ctx context.Context, id string) error

	// HealthCheck reports backing-store connectivity. It never returns an
	// error; any failure is logged and reported as false.
	HealthCheck(ctx context.Context) bool
}
