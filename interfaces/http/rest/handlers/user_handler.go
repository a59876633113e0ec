package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"infograph-backend/application/services"
	pkgerrors "infograph-backend/pkg/errors"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	users  *services.UserService
	errors *pkgerrors.ErrorHandler
	logger *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(users *services.UserService, errHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *UserHandler {
	return &UserHandler{users: users, errors: errHandler, logger: logger}
}

// CreateUserRequest represents the request body for creating a user
type CreateUserRequest struct {
	Email string  `json:"email" validate:"notblank"`
	Name  *string `json:"name"`
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	user, err := h.users.Create(r.Context(), req.Email, req.Name)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, user)
}

// GetUser handles GET /api/users/{userID}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.Get(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, user)
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, users)
}
