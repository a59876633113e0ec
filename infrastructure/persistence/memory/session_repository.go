package memory

import (
	"context"
	"sync"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
)

// SessionRepository is an in-memory ports.SessionRepository
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*entities.ResearchSession
	order    []string
	stamper  monotonicStamper
}

var _ ports.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository creates an empty session store
func NewSessionRepository(clock Clock) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*entities.ResearchSession),
		stamper:  newStamper(clock),
	}
}

// Create stores a new session and stamps its CreatedAt
func (r *SessionRepository) Create(ctx context.Context, session *entities.ResearchSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sessions[session.ID]; exists {
		return pkgerrors.NewValidationError("session already exists")
	}
	session.CreatedAt = r.stamper.stamp()
	r.sessions[session.ID] = session.Clone()
	r.order = append(r.order, session.ID)
	return nil
}

// GetByID retrieves a session by its ID
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*entities.ResearchSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.sessions[id]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("session")
	}
	return session.Clone(), nil
}

// Update replaces an existing session. CreatedAt is owned by the store.
func (r *SessionRepository) Update(ctx context.Context, session *entities.ResearchSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.sessions[session.ID]
	if !exists {
		return pkgerrors.NewNotFoundError("session")
	}
	updated := session.Clone()
	updated.CreatedAt = existing.CreatedAt
	r.sessions[session.ID] = updated
	return nil
}

// List returns sessions matching filter in insertion order
func (r *SessionRepository) List(ctx context.Context, filter ports.SessionFilter) ([]*entities.ResearchSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.ResearchSession, 0)
	for _, id := range r.order {
		session := r.sessions[id]
		if matchesFilter(session, filter) {
			out = append(out, session.Clone())
		}
	}
	return out, nil
}

func matchesFilter(s *entities.ResearchSession, f ports.SessionFilter) bool {
	if f.UserID != "" && s.UserID != f.UserID {
		return false
	}
	if f.Topic != "" && !s.TopicContains(f.Topic) {
		return false
	}
	if f.Start != nil && s.CreatedAt.Before(*f.Start) {
		return false
	}
	if f.End != nil && s.CreatedAt.After(*f.End) {
		return false
	}
	if len(f.Tags) > 0 && !s.HasAllTags(f.Tags) {
		return false
	}
	return true
}
