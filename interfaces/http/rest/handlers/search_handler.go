package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"infograph-backend/application/services"
	"infograph-backend/interfaces/http/rest/middleware"
	pkgerrors "infograph-backend/pkg/errors"
)

// SearchHandler handles search HTTP requests
type SearchHandler struct {
	search *services.SearchService
	errors *pkgerrors.ErrorHandler
	logger *zap.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(search *services.SearchService, errHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{search: search, errors: errHandler, logger: logger}
}

// Search handles GET /api/search?query=
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	clientID := middleware.ClientIDFromContext(r.Context())

	sources, err := h.search.SearchForClient(r.Context(), clientID, r.URL.Query().Get("query"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, sources)
}

// ClearCache handles POST /api/search/cache/clear
func (h *SearchHandler) ClearCache(w http.ResponseWriter, r *http.Request) {
	if err := h.search.ClearCache(r.Context()); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, StatusResponse{Status: "ok"})
}
