package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"infograph-backend/application/services"
	"infograph-backend/domain/core/entities"
	pkgerrors "infograph-backend/pkg/errors"
)

// SessionHandler handles research session HTTP requests, including the
// pipeline run and the export bundle.
type SessionHandler struct {
	sessions *services.SessionService
	pipeline *services.PipelineService
	export   *services.ExportService
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(
	sessions *services.SessionService,
	pipeline *services.PipelineService,
	export *services.ExportService,
	errHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		pipeline: pipeline,
		export:   export,
		errors:   errHandler,
		logger:   logger,
	}
}

// CreateSessionRequest represents the request body for creating a session
type CreateSessionRequest struct {
	UserID string   `json:"user_id" validate:"notblank"`
	Prompt string   `json:"prompt" validate:"notblank"`
	Topic  *string  `json:"topic"`
	Tags   []string `json:"tags"`
}

// UpdateSessionRequest represents a partial session update; omitted
// fields are left unchanged.
type UpdateSessionRequest struct {
	Status *string   `json:"status"`
	Prompt *string   `json:"prompt"`
	Topic  *string   `json:"topic"`
	Tags   *[]string `json:"tags"`
}

// AddSourceRequest represents a manually attached source
type AddSourceRequest struct {
	Title      string  `json:"title" validate:"notblank"`
	URL        string  `json:"url" validate:"required,url"`
	Snippet    string  `json:"snippet"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=1"`
}

// CreateSession handles POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	session, err := h.sessions.Create(r.Context(), services.CreateSessionInput{
		UserID: req.UserID,
		Prompt: req.Prompt,
		Topic:  req.Topic,
		Tags:   req.Tags,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, session)
}

// ListSessions handles GET /api/sessions
func (h *SessionHandler) ListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sessions, err := h.sessions.List(r.Context(), services.ListSessionsQuery{
		UserID:    q.Get("user_id"),
		Topic:     q.Get("topic"),
		StartDate: q.Get("start_date"),
		EndDate:   q.Get("end_date"),
		Tags:      q.Get("tags"),
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, sessions)
}

// GetSession handles GET /api/sessions/{sessionID}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Get(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, session)
}

// UpdateSession handles PUT /api/sessions/{sessionID}
func (h *SessionHandler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var req UpdateSessionRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	session, err := h.sessions.Update(r.Context(), chi.URLParam(r, "sessionID"), entities.SessionUpdate{
		Status: req.Status,
		Prompt: req.Prompt,
		Topic:  req.Topic,
		Tags:   req.Tags,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, session)
}

// RunSession handles POST /api/sessions/{sessionID}/run
func (h *SessionHandler) RunSession(w http.ResponseWriter, r *http.Request) {
	result, err := h.pipeline.Run(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, result)
}

// ListSources handles GET /api/sessions/{sessionID}/sources
func (h *SessionHandler) ListSources(w http.ResponseWriter, r *http.Request) {
	sources, err := h.sessions.Sources(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, sources)
}

// AddSource handles POST /api/sessions/{sessionID}/sources
func (h *SessionHandler) AddSource(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	// Unknown session answers 404 even when the body is also invalid.
	if _, err := h.sessions.Get(r.Context(), sessionID); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	var req AddSourceRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	source, err := h.sessions.AddSource(r.Context(), sessionID, services.AddSourceInput{
		Title:      req.Title,
		URL:        req.URL,
		Snippet:    req.Snippet,
		Confidence: req.Confidence,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, source)
}

// GetInfographic handles GET /api/sessions/{sessionID}/infographic
func (h *SessionHandler) GetInfographic(w http.ResponseWriter, r *http.Request) {
	infographic, err := h.sessions.Infographic(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, infographic)
}

// ExportSession handles GET /api/sessions/{sessionID}/export
func (h *SessionHandler) ExportSession(w http.ResponseWriter, r *http.Request) {
	bundle, err := h.export.Export(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, bundle)
}
