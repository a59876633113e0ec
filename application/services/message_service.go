package services

import (
	"context"

	"go.uber.org/zap"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
)

// MessageService manages the per-session chat log. Messages do not
// require their session to exist.
type MessageService struct {
	messages ports.MessageRepository
	logger   *zap.Logger
}

// NewMessageService creates a new message service
func NewMessageService(messages ports.MessageRepository, logger *zap.Logger) *MessageService {
	return &MessageService{messages: messages, logger: logger}
}

// Create validates and appends a message
func (s *MessageService) Create(ctx context.Context, sessionID, role, content string) (*entities.Message, error) {
	message, err := entities.NewMessage(sessionID, role, content)
	if err != nil {
		return nil, err
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create message")
	}

	s.logger.Debug("Message created",
		zap.String("messageID", message.ID),
		zap.String("sessionID", sessionID),
		zap.String("role", role),
	)
	return message, nil
}

// Get returns a message by id
func (s *MessageService) Get(ctx context.Context, id string) (*entities.Message, error) {
	return s.messages.GetByID(ctx, id)
}

// ListBySession returns the session's messages oldest first
func (s *MessageService) ListBySession(ctx context.Context, sessionID string) ([]*entities.Message, error) {
	return s.messages.ListBySession(ctx, sessionID)
}
