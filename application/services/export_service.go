package services

import (
	"context"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
)

// ExportBundle is everything recorded for one session
type ExportBundle struct {
	Session     *entities.ResearchSession `json:"session"`
	Messages    []*entities.Message       `json:"messages"`
	Sources     []entities.Source         `json:"sources"`
	Infographic *entities.Infographic     `json:"infographic"`
}

// ExportService assembles session bundles from read-only views only
type ExportService struct {
	sessions     ports.SessionReader
	messages     ports.MessageReader
	sources      ports.SourceReader
	infographics ports.InfographicReader
}

// NewExportService creates a new export service
func NewExportService(
	sessions ports.SessionReader,
	messages ports.MessageReader,
	sources ports.SourceReader,
	infographics ports.InfographicReader,
) *ExportService {
	return &ExportService{
		sessions:     sessions,
		messages:     messages,
		sources:      sources,
		infographics: infographics,
	}
}

// Export returns the bundle for sessionID. A session that has not been run
// yet exports with a nil infographic.
func (s *ExportService) Export(ctx context.Context, sessionID string) (*ExportBundle, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	messages, err := s.messages.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	sources, err := s.sources.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	infographic, err := s.infographics.GetBySession(ctx, sessionID)
	if err != nil && !pkgerrors.IsNotFound(err) {
		return nil, err
	}

	return &ExportBundle{
		Session:     session,
		Messages:    messages,
		Sources:     sources,
		Infographic: infographic,
	}, nil
}
