package memory

import (
	"context"
	"sync"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
)

// UserRepository is an in-memory ports.UserRepository
type UserRepository struct {
	mu      sync.RWMutex
	users   map[string]*entities.User
	order   []string
	stamper monotonicStamper
}

var _ ports.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates an empty user store
func NewUserRepository(clock Clock) *UserRepository {
	return &UserRepository{
		users:   make(map[string]*entities.User),
		stamper: newStamper(clock),
	}
}

// Save inserts or replaces a user
func (r *UserRepository) Save(ctx context.Context, user *entities.User) error {
	if user == nil || user.ID == "" {
		return pkgerrors.NewValidationError("user id is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = r.stamper.stamp()
	}
	if _, exists := r.users[user.ID]; !exists {
		r.order = append(r.order, user.ID)
	}
	r.users[user.ID] = user.Clone()
	return nil
}

// GetByID retrieves a user by its ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, pkgerrors.NewNotFoundError("user")
	}
	return user.Clone(), nil
}

// List returns all users in insertion order
func (r *UserRepository) List(ctx context.Context) ([]*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entities.User, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.users[id].Clone())
	}
	return out, nil
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[id]; !exists {
		return pkgerrors.NewNotFoundError("user")
	}
	delete(r.users, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
