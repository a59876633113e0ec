package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "infograph-backend/pkg/errors"
)

// Message roles
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of a session's chat log
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewMessage validates and builds a message
func NewMessage(sessionID, role, content string) (*Message, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, pkgerrors.NewValidationError("session_id is required")
	}
	if role != RoleUser && role != RoleAssistant {
		return nil, pkgerrors.NewValidationError("role must be one of: user assistant")
	}
	if strings.TrimSpace(content) == "" {
		return nil, pkgerrors.NewValidationError("content cannot be empty")
	}

	return &Message{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
	}, nil
}
