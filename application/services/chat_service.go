package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
)

// ChatInput is the payload of a chat send
type ChatInput struct {
	UserID string
	Prompt string
	Topic  *string
	Tags   []string
}

// ChatResult aggregates everything a chat send produced
type ChatResult struct {
	Session     *entities.ResearchSession `json:"session"`
	Messages    []*entities.Message       `json:"messages"`
	Sources     []entities.Source         `json:"sources"`
	Infographic *entities.Infographic     `json:"infographic"`
}

// ChatService creates a session from a prompt, logs the prompt as the
// first user message and runs the pipeline in one call.
type ChatService struct {
	sessions *SessionService
	messages *MessageService
	pipeline *PipelineService
	logger   *zap.Logger
}

// NewChatService creates a new chat service
func NewChatService(sessions *SessionService, messages *MessageService, pipeline *PipelineService, logger *zap.Logger) *ChatService {
	return &ChatService{
		sessions: sessions,
		messages: messages,
		pipeline: pipeline,
		logger:   logger,
	}
}

// Send runs the whole flow for in
func (s *ChatService) Send(ctx context.Context, in ChatInput) (*ChatResult, error) {
	if strings.TrimSpace(in.Prompt) == "" {
		return nil, pkgerrors.NewValidationError("prompt is required")
	}

	session, err := s.sessions.Create(ctx, CreateSessionInput{
		UserID: in.UserID,
		Prompt: in.Prompt,
		Topic:  in.Topic,
		Tags:   in.Tags,
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.messages.Create(ctx, session.ID, entities.RoleUser, in.Prompt); err != nil {
		return nil, err
	}

	result, err := s.pipeline.Run(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messages.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Chat send completed", zap.String("sessionID", session.ID))
	return &ChatResult{
		Session:     result.Session,
		Messages:    messages,
		Sources:     result.Sources,
		Infographic: result.Infographic,
	}, nil
}
