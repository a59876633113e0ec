package memory

import (
	"context"
	"sync"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
)

// InfographicRepository is an in-memory ports.InfographicRepository. Each
// session points at its latest infographic; older records stay reachable
// by id.
type InfographicRepository struct {
	mu           sync.RWMutex
	infographics map[string]*entities.Infographic
	bySession    map[string]string
	stamper      monotonicStamper
}

var _ ports.InfographicRepository = (*InfographicRepository)(nil)

// NewInfographicRepository creates an empty infographic store
func NewInfographicRepository(clock Clock) *InfographicRepository {
	return &InfographicRepository{
		infographics: make(map[string]*entities.Infographic),
		bySession:    make(map[string]string),
		stamper:      newStamper(clock),
	}
}

// Save stores the record and indexes it under its session
func (r *InfographicRepository) Save(ctx context.Context, infographic *entities.Infographic) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if infographic.CreatedAt.IsZero() {
		infographic.CreatedAt = r.stamper.stamp()
	}
	r.infographics[infographic.ID] = infographic.Clone()
	if infographic.SessionID != nil {
		r.bySession[*infographic.SessionID] = infographic.ID
	}
	return nil
}

// GetByID retrieves an infographic by its ID
func (r *InfographicRepository) GetByID(ctx context.Context, id string) (*entities.Infographic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infographic, exists := r.infographics[id]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("infographic")
	}
	return infographic.Clone(), nil
}

// GetBySession returns the session's current infographic
func (r *InfographicRepository) GetBySession(ctx context.Context, sessionID string) (*entities.Infographic, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.bySession[sessionID]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("infographic")
	}
	return r.infographics[id].Clone(), nil
}
