package services

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
	"infograph-backend/pkg/observability"
)

// Pipeline run outcomes as recorded in metrics
const (
	pipelineCompleted = "completed"
	pipelineFailed    = "failed"
)

// PipelineResult is what a pipeline run produced
type PipelineResult struct {
	Session     *entities.ResearchSession `json:"session"`
	Sources     []entities.Source         `json:"sources"`
	Infographic *entities.Infographic     `json:"infographic"`
}

// Searcher is the part of SearchService the pipeline needs
type Searcher interface {
	Search(ctx context.Context, query string) ([]entities.Source, error)
}

// PipelineService turns a session's prompt into sources and a placeholder
// infographic, then marks the session completed. Steps are not rolled
// back: a failure leaves whatever earlier steps wrote.
type PipelineService struct {
	sessions     ports.SessionRepository
	sources      ports.SourceRepository
	infographics ports.InfographicRepository
	search       Searcher
	metrics      *observability.Collector
	logger       *zap.Logger
}

// NewPipelineService creates a new pipeline service
func NewPipelineService(
	sessions ports.SessionRepository,
	sources ports.SourceRepository,
	infographics ports.InfographicRepository,
	search Searcher,
	metrics *observability.Collector,
	logger *zap.Logger,
) *PipelineService {
	return &PipelineService{
		sessions:     sessions,
		sources:      sources,
		infographics: infographics,
		search:       search,
		metrics:      metrics,
		logger:       logger,
	}
}

// Run executes the pipeline for sessionID
func (s *PipelineService) Run(ctx context.Context, sessionID string) (*PipelineResult, error) {
	ctx, span := observability.StartSpan(ctx, "pipeline.run", attribute.String("session.id", sessionID))
	defer span.End()

	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	results, err := s.search.Search(ctx, session.Prompt)
	if err != nil {
		s.metrics.RecordPipelineRun(pipelineFailed)
		span.SetStatus(codes.Error, "search failed")
		span.RecordError(err)
		s.logger.Error("Pipeline search failed", zap.String("sessionID", sessionID), zap.Error(err))
		if appErr := pkgerrors.GetAppError(err); appErr != nil && appErr.HTTPStatus >= 500 {
			return nil, err
		}
		return nil, pkgerrors.NewExternalError("search", err)
	}

	if err := s.sources.ReplaceForSession(ctx, sessionID, results); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to store sources")
	}

	infographic := entities.NewPlaceholderInfographic(sessionID)
	if err := s.infographics.Save(ctx, infographic); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to store infographic")
	}

	session.Status = entities.StatusCompleted
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to update session")
	}

	s.metrics.RecordPipelineRun(pipelineCompleted)
	span.SetAttributes(attribute.Int("pipeline.sources", len(results)))
	s.logger.Info("Pipeline completed",
		zap.String("sessionID", sessionID),
		zap.Int("sources", len(results)),
	)

	return &PipelineResult{
		Session:     session,
		Sources:     results,
		Infographic: infographic,
	}, nil
}
