package memory

import (
	"context"
	"sync"

	"infograph-backend/application/ports"
	pkgerrors "infograph-backend/pkg/errors"
)

// ImageStore keeps rendered image bytes in memory
type ImageStore struct {
	mu     sync.RWMutex
	images map[string][]byte
}

var _ ports.ImageStore = (*ImageStore)(nil)

// NewImageStore creates an empty image store
func NewImageStore() *ImageStore {
	return &ImageStore{images: make(map[string][]byte)}
}

// Put stores a copy of data under id
func (s *ImageStore) Put(ctx context.Context, id string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.images[id] = append([]byte(nil), data...)
	return nil
}

// Get returns a copy of the bytes stored under id
func (s *ImageStore) Get(ctx context.Context, id string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, exists := s.images[id]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("infographic image")
	}
	return append([]byte(nil), data...), nil
}
