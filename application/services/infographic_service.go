package services

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"infograph-backend/application/ports"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
	"infograph-backend/pkg/observability"
)

// Image formats served by GetImage
const (
	FormatSVG = "svg"
	FormatPNG = "png"

	ContentTypeSVG = "image/svg+xml"
	ContentTypePNG = "image/png"
)

const titleFromPromptRunes = 40

// GenerateInput describes an infographic to render
type GenerateInput struct {
	SessionID *string
	Title     string
	Prompt    string
	Stats     []ports.Stat
	Bullets   []string
	Sources   []string
	Template  string
}

// InfographicService renders, stores and serves infographics
type InfographicService struct {
	renderer     ports.ImageRenderer
	images       ports.ImageStore
	infographics ports.InfographicRepository
	sessions     ports.SessionRepository
	metrics      *observability.Collector
	logger       *zap.Logger
}

// NewInfographicService creates a new infographic service
func NewInfographicService(
	renderer ports.ImageRenderer,
	images ports.ImageStore,
	infographics ports.InfographicRepository,
	sessions ports.SessionRepository,
	metrics *observability.Collector,
	logger *zap.Logger,
) *InfographicService {
	return &InfographicService{
		renderer:     renderer,
		images:       images,
		infographics: infographics,
		sessions:     sessions,
		metrics:      metrics,
		logger:       logger,
	}
}

// ResolveTitle picks the heading: the explicit title, else the prompt cut
// to 40 runes, else "Untitled".
func ResolveTitle(title, prompt string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	p := strings.TrimSpace(prompt)
	if p == "" {
		return "Untitled"
	}
	if utf8.RuneCountInString(p) > titleFromPromptRunes {
		return string([]rune(p)[:titleFromPromptRunes]) + "..."
	}
	return p
}

// Generate renders the SVG, stores it and records its metadata
func (s *InfographicService) Generate(ctx context.Context, in GenerateInput) (*entities.Infographic, error) {
	title := ResolveTitle(in.Title, in.Prompt)

	template := strings.TrimSpace(in.Template)
	if template == "" {
		template = entities.DefaultTemplate
	}

	var sessionID *string
	if in.SessionID != nil && strings.TrimSpace(*in.SessionID) != "" {
		sid := strings.TrimSpace(*in.SessionID)
		sessionID = &sid
	}

	return s.store(ctx, sessionID, ports.InfographicContent{
		Title:      title,
		Prompt:     in.Prompt,
		Stats:      in.Stats,
		Bullets:    in.Bullets,
		SourceURLs: in.Sources,
	}, map[string]interface{}{
		"template": template,
		"title":    title,
	})
}

// GenerateForSession renders an infographic from the session's prompt,
// makes it the session's infographic and marks the session
// infographic_ready. Caller layout_meta keys override the defaults.
func (s *InfographicService) GenerateForSession(
	ctx context.Context,
	sessionID, title string,
	layoutMeta map[string]interface{},
) (*entities.Infographic, error) {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resolved := ResolveTitle(title, session.Prompt)
	meta := map[string]interface{}{
		"template": entities.DefaultTemplate,
		"title":    resolved,
	}
	for k, v := range layoutMeta {
		meta[k] = v
	}

	sid := session.ID
	infographic, err := s.store(ctx, &sid, ports.InfographicContent{
		Title:  resolved,
		Prompt: session.Prompt,
	}, meta)
	if err != nil {
		return nil, err
	}

	session.Status = entities.StatusInfographicReady
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to update session status")
	}

	s.logger.Info("Session infographic generated",
		zap.String("sessionID", session.ID),
		zap.String("infographicID", infographic.ID),
	)
	return infographic, nil
}

func (s *InfographicService) store(
	ctx context.Context,
	sessionID *string,
	content ports.InfographicContent,
	layoutMeta map[string]interface{},
) (*entities.Infographic, error) {
	svg, err := s.renderer.RenderSVG(ctx, content)
	if err != nil {
		return nil, pkgerrors.NewInternalError("failed to render infographic").WithCause(err)
	}

	infographic := entities.NewRenderedInfographic(sessionID, layoutMeta)

	if err := s.images.Put(ctx, infographic.ID, svg); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to store infographic image")
	}
	if err := s.infographics.Save(ctx, infographic); err != nil {
		return nil, pkgerrors.Wrap(err, "failed to save infographic")
	}

	s.metrics.RecordInfographicGenerated()
	s.logger.Info("Infographic generated",
		zap.String("infographicID", infographic.ID),
		zap.Int("bytes", len(svg)),
	)
	return infographic, nil
}

// Get returns infographic metadata by id
func (s *InfographicService) Get(ctx context.Context, id string) (*entities.Infographic, error) {
	return s.infographics.GetByID(ctx, id)
}

// GetImage returns the image bytes and content type for format. An empty
// format means svg.
func (s *InfographicService) GetImage(ctx context.Context, id, format string) ([]byte, string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatSVG
	}
	if format != FormatSVG && format != FormatPNG {
		return nil, "", pkgerrors.NewValidationError("format must be one of: svg png")
	}

	svg, err := s.images.Get(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if format == FormatSVG {
		return svg, ContentTypeSVG, nil
	}

	png, err := s.renderer.RenderPNG(ctx, svg)
	if err != nil {
		return nil, "", pkgerrors.NewInternalError("failed to render png").WithCause(err)
	}
	return png, ContentTypePNG, nil
}
