package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"infograph-backend/application/services"
	pkgerrors "infograph-backend/pkg/errors"
)

// UserIDHeader carries a caller's user id on demo requests
const UserIDHeader = "X-User-Id"

// AuthHandler handles the placeholder OAuth endpoints
type AuthHandler struct {
	auth   *services.AuthService
	errors *pkgerrors.ErrorHandler
	logger *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth *services.AuthService, errHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, errors: errHandler, logger: logger}
}

// LoginResponse carries the consent page URL
type LoginResponse struct {
	AuthURL string `json:"auth_url"`
}

// Health handles GET /api/auth/health
func (h *AuthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, StatusResponse{Status: "ok"})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	authURL, err := h.auth.Login(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, LoginResponse{AuthURL: authURL})
}

// Callback handles GET /api/auth/callback?code=&error=
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.auth.Callback(r.Context(), q.Get("code"), q.Get("error"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, result)
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Me(r.Context(), r.Header.Get(UserIDHeader), r.Header.Get("Authorization"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context(), r.Header.Get(UserIDHeader), r.Header.Get("Authorization")); err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, StatusResponse{Status: "ok"})
}
