package services

import (
	"context"

	"go.uber.org/zap"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
)

// UserService manages user accounts
type UserService struct {
	users  ports.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new user service
func NewUserService(users ports.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Create registers a new user
func (s *UserService) Create(ctx context.Context, email string, name *string) (*entities.User, error) {
	user, err := entities.NewUser(email, name)
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to save user")
	}

	s.logger.Info("User created", zap.String("userID", user.ID))
	return user, nil
}

// Get returns a user by id
func (s *UserService) Get(ctx context.Context, id string) (*entities.User, error) {
	return s.users.GetByID(ctx, id)
}

// List returns all users
func (s *UserService) List(ctx context.Context) ([]*entities.User, error) {
	return s.users.List(ctx)
}

// Upsert stores the profile under its provider id, keeping the original
// creation time of an existing account.
func (s *UserService) Upsert(ctx context.Context, profile ports.IdentityProfile) (*entities.User, error) {
	name := profile.Name
	user := &entities.User{ID: profile.ID, Email: profile.Email, Name: &name}

	existing, err := s.users.GetByID(ctx, profile.ID)
	switch {
	case err == nil:
		user.CreatedAt = existing.CreatedAt
	case !pkgerrors.IsNotFound(err):
		return nil, err
	}

	if err := s.users.Save(ctx, user); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to save user")
	}

	s.logger.Debug("User upserted", zap.String("userID", user.ID))
	return user, nil
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("User deleted", zap.String("userID", id))
	return nil
}
