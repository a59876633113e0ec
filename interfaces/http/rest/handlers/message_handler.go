package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"infograph-backend/application/services"
	pkgerrors "infograph-backend/pkg/errors"
)

// MessageHandler handles chat message HTTP requests
type MessageHandler struct {
	messages *services.MessageService
	errors   *pkgerrors.ErrorHandler
	logger   *zap.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messages *services.MessageService, errHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *MessageHandler {
	return &MessageHandler{messages: messages, errors: errHandler, logger: logger}
}

// CreateMessageRequest represents the request body for creating a message.
// Blank content is rejected by the message entity itself.
type CreateMessageRequest struct {
	SessionID string `json:"session_id" validate:"notblank"`
	Role      string `json:"role" validate:"required,oneof=user assistant"`
	Content   string `json:"content"`
}

// CreateMessage handles POST /api/messages
func (h *MessageHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var req CreateMessageRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	message, err := h.messages.Create(r.Context(), req.SessionID, req.Role, req.Content)
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, message)
}

// ListForSession handles GET /api/messages/session/{sessionID}
func (h *MessageHandler) ListForSession(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.ListBySession(r.Context(), chi.URLParam(r, "sessionID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, messages)
}

// GetMessage handles GET /api/messages/{messageID}
func (h *MessageHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	message, err := h.messages.Get(r.Context(), chi.URLParam(r, "messageID"))
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, message)
}
