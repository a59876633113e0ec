package memory

import (
	"context"
	"sort"
	"sync"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
)

// MessageRepository is an in-memory ports.MessageRepository
type MessageRepository struct {
	mu        sync.RWMutex
	messages  map[string]*entities.Message
	bySession map[string][]string // message ids in insertion order
	stamper   monotonicStamper
}

var _ ports.MessageRepository = (*MessageRepository)(nil)

// NewMessageRepository creates an empty message store
func NewMessageRepository(clock Clock) *MessageRepository {
	return &MessageRepository{
		messages:  make(map[string]*entities.Message),
		bySession: make(map[string][]string),
		stamper:   newStamper(clock),
	}
}

// Create stores a message and stamps its CreatedAt
func (r *MessageRepository) Create(ctx context.Context, message *entities.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.messages[message.ID]; exists {
		return pkgerrors.NewValidationError("message already exists")
	}
	message.CreatedAt = r.stamper.stamp()
	stored := *message
	r.messages[message.ID] = &stored
	r.bySession[message.SessionID] = append(r.bySession[message.SessionID], message.ID)
	return nil
}

// GetByID retrieves a message by its ID
func (r *MessageRepository) GetByID(ctx context.Context, id string) (*entities.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	message, exists := r.messages[id]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("message")
	}
	c := *message
	return &c, nil
}

// ListBySession returns the session's messages ordered by CreatedAt with
// ties kept in insertion order.
func (r *MessageRepository) ListBySession(ctx context.Context, sessionID string) ([]*entities.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.bySession[sessionID]
	out := make([]*entities.Message, 0, len(ids))
	for _, id := range ids {
		c := *r.messages[id]
		out = append(out, &c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
