package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
	"infograph-backend/pkg/utils"
)

// CreateSessionInput carries the fields of a new research session
type CreateSessionInput struct {
	UserID string
	Prompt string
	Topic  *string
	Tags   []string
}

// ListSessionsQuery holds the raw list filters as received from a client
type ListSessionsQuery struct {
	UserID    string
	Topic     string
	StartDate string
	EndDate   string
	Tags      string
}

// AddSourceInput carries a manually supplied source
type AddSourceInput struct {
	Title      string
	URL        string
	Snippet    string
	Confidence float64
}

// SessionService manages research sessions and their attached artifacts
type SessionService struct {
	sessions     ports.SessionRepository
	sources      ports.SourceRepository
	infographics ports.InfographicReader
	logger       *zap.Logger
	now          func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(
	sessions ports.SessionRepository,
	sources ports.SourceRepository,
	infographics ports.InfographicReader,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessions:     sessions,
		sources:      sources,
		infographics: infographics,
		logger:       logger,
		now:          time.Now,
	}
}

// Create stores a new pending session
func (s *SessionService) Create(ctx context.Context, in CreateSessionInput) (*entities.ResearchSession, error) {
	session, err := entities.NewResearchSession(in.UserID, in.Prompt, in.Topic, in.Tags)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to create session")
	}

	s.logger.Info("Session created",
		zap.String("sessionID", session.ID),
		zap.String("userID", session.UserID),
	)
	return session, nil
}

// Get returns a session by id
func (s *SessionService) Get(ctx context.Context, id string) (*entities.ResearchSession, error) {
	return s.sessions.GetByID(ctx, id)
}

// Update merges the provided fields into the stored session
func (s *SessionService) Update(ctx context.Context, id string, update entities.SessionUpdate) (*entities.ResearchSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := session.Apply(update); err != nil {
		return nil, err
	}
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, err
	}

	s.logger.Debug("Session updated", zap.String("sessionID", id), zap.String("status", session.Status))
	return session, nil
}

// List returns sessions matching the query filters
func (s *SessionService) List(ctx context.Context, q ListSessionsQuery) ([]*entities.ResearchSession, error) {
	filter := ports.SessionFilter{
		UserID: q.UserID,
		Topic:  q.Topic,
		Tags:   entities.ParseTagList(q.Tags),
	}

	if q.StartDate != "" {
		start, _, err := utils.ParseFilterTime(q.StartDate)
		if err != nil {
			return nil, pkgerrors.NewValidationError("start_date: " + err.Error())
		}
		filter.Start = &start
	}
	if q.EndDate != "" {
		end, dateOnly, err := utils.ParseFilterTime(q.EndDate)
		if err != nil {
			return nil, pkgerrors.NewValidationError("end_date: " + err.Error())
		}
		if dateOnly {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
		filter.End = &end
	}

	return s.sessions.List(ctx, filter)
}

// Sources returns the session's sources in order
func (s *SessionService) Sources(ctx context.Context, id string) ([]entities.Source, error) {
	if _, err := s.sessions.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.sources.ListBySession(ctx, id)
}

// AddSource appends a manually supplied source to the session
func (s *SessionService) AddSource(ctx context.Context, id string, in AddSourceInput) (*entities.Source, error) {
	if _, err := s.sessions.GetByID(ctx, id); err != nil {
		return nil, err
	}

	source, err := entities.NewSource(in.Title, in.URL, in.Snippet, in.Confidence, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := s.sources.Append(ctx, id, source); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to add source")
	}

	s.logger.Debug("Source added", zap.String("sessionID", id), zap.String("url", source.URL))
	return &source, nil
}

// Infographic returns the session's current infographic
func (s *SessionService) Infographic(ctx context.Context, id string) (*entities.Infographic, error) {
	if _, err := s.sessions.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return s.infographics.GetBySession(ctx, id)
}
