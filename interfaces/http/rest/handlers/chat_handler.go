package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"infograph-backend/application/services"
	pkgerrors "infograph-backend/pkg/errors"
)

// ChatHandler handles the one-call chat flow used by the demo UI
type ChatHandler struct {
	chat   *services.ChatService
	errors *pkgerrors.ErrorHandler
	logger *zap.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chat *services.ChatService, errHandler *pkgerrors.ErrorHandler, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{chat: chat, errors: errHandler, logger: logger}
}

// ChatSendRequest represents the request body of a chat send
type ChatSendRequest struct {
	UserID string   `json:"user_id" validate:"notblank"`
	Prompt string   `json:"prompt"`
	Topic  *string  `json:"topic"`
	Tags   []string `json:"tags"`
}

// Send handles POST /api/chat/send
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req ChatSendRequest
	if err := decodeJSON(r, &req); err != nil {
		h.errors.Handle(w, r, err)
		return
	}

	result, err := h.chat.Send(r.Context(), services.ChatInput{
		UserID: req.UserID,
		Prompt: req.Prompt,
		Topic:  req.Topic,
		Tags:   req.Tags,
	})
	if err != nil {
		h.errors.Handle(w, r, err)
		return
	}
	respondJSON(w, h.logger, http.StatusOK, result)
}
