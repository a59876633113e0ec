package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"infograph-backend/application/ports"
	"infograph-backend/application/services"
	pkgerrors "infograph-backend/pkg/errors"
)

// InfographicHandler handles infographic HTTP requests
type InfographicHandler struct {
	infographics *services.InfographicService
	errors       *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewInfographicHandler creates a new infographic handler
func NewInfographicHandler(infographics *services.InfographicService, errHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *InfographicHandler {
	return &InfographicHandler{infographics: infographics, errors: errHandler, logger: logger}
}

// GenerateInfographicRequest represents the request body for rendering an
// infographic. At least one of title and prompt must be non-blank.
type GenerateInfographicRequest struct {
	SessionID *string      `json:"session_id"`
	Title     string       `json:"title"`
	Prompt    string       `json:"prompt"`
	Stats     []ports.Stat `json:"stats"`
	Bullets   []string     `json:"bullets"`
	Sources   []string     `json:"sources"`
	Template  string       `json:"template"`
}

// Generate handles POST /api/infographics/generate
func (h *InfographicHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateInfographicRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	if strings.TrimSpace(req.Title) == "" && strings.TrimSpace(req.Prompt) == "" {
		h.errors.Handle(w, r, pkgerrors.NewValidationError("title or prompt is required"))
		return
	}

	infographic, err := h.infographics.Generate(r.Context(), services.GenerateInput{
		SessionID: req.SessionID,
		Title:     req.Title,
		Prompt:    req.Prompt,
		Stats:     req.Stats,
		Bullets:   req.Bullets,
		Sources:   req.Sources,
		Template:  req.Template,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, infographic)
}

// SessionInfographicRequest represents the request body for rendering a
// session's infographic. A blank title falls back to the session prompt.
type SessionInfographicRequest struct {
	Title      string                 `json:"title"`
	LayoutMeta map[string]interface{} `json:"layout_meta"`
}

// GenerateForSession handles POST /api/sessions/{sessionID}/infographic
func (h *InfographicHandler) GenerateForSession(w http.ResponseWriter, r *http.Request) {
	var req SessionInfographicRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	infographic, err := h.infographics.GenerateForSession(
		r.Context(),
		chi.URLParam(r, "sessionID"),
		req.Title,
		req.LayoutMeta,
	)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, infographic)
}

// GetInfographic handles GET /api/infographics/{infographicID}
func (h *InfographicHandler) GetInfographic(w http.ResponseWriter, r *http.Request) {
	infographic, err := h.infographics.Get(r.Context(), chi.URLParam(r, "infographicID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, infographic)
}

// GetImage handles GET /api/infographics/{infographicID}/image?format=svg|png
func (h *InfographicHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	data, contentType, err := h.infographics.GetImage(
		r.Context(),
		chi.URLParam(r, "infographicID"),
		r.URL.Query().Get("format"),
	)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("Failed to write image", zap.Error(err))
	}
}
