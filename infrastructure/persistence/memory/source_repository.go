package memory

import (
	"context"
	"sync"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
)

// SourceRepository is an in-memory ports.SourceRepository keyed by session id
type SourceRepository struct {
	mu      sync.RWMutex
	sources map[string][]entities.Source
}

var _ ports.SourceRepository = (*SourceRepository)(nil)

// NewSourceRepository creates an empty source store
func NewSourceRepository() *SourceRepository {
	return &SourceRepository{sources: make(map[string][]entities.Source)}
}

// ListBySession returns a copy of the session's sources; unknown sessions
// yield an empty list.
func (r *SourceRepository) ListBySession(ctx context.Context, sessionID string) ([]entities.Source, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append(make([]entities.Source, 0, len(r.sources[sessionID])), r.sources[sessionID]...), nil
}

// ReplaceForSession swaps the session's source list
func (r *SourceRepository) ReplaceForSession(ctx context.Context, sessionID string, sources []entities.Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sources[sessionID] = append(make([]entities.Source, 0, len(sources)), sources...)
	return nil
}

// Append adds one source to the end of the session's list
func (r *SourceRepository) Append(ctx context.Context, sessionID string, source entities.Source) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sources[sessionID] = append(r.sources[sessionID], source)
	return nil
}
