package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultTemplate is the only layout template the renderer knows
const DefaultTemplate = "basic_v1"

// Infographic is a generated visual summary, optionally tied to a session
type Infographic struct {
	ID         string                 `json:"id"`
	SessionID  *string                `json:"session_id"`
	ImageURL   string                 `json:"image_url"`
	LayoutMeta map[string]interface{} `json:"layout_meta"`
	CreatedAt  time.Time              `json:"created_at"`
}

// NewRenderedInfographic builds the record for an image served from the
// infographic image endpoint.
func NewRenderedInfographic(sessionID *string, layoutMeta map[string]interface{}) *Infographic {
	id := uuid.NewString()
	return &Infographic{
		ID:         id,
		SessionID:  sessionID,
		ImageURL:   fmt.Sprintf("/api/infographics/%s/image", id),
		LayoutMeta: layoutMeta,
	}
}

// NewPlaceholderInfographic builds the static placeholder record a pipeline
// run attaches to its session.
func NewPlaceholderInfographic(sessionID string) *Infographic {
	sid := sessionID
	return &Infographic{
		ID:         uuid.NewString(),
		SessionID:  &sid,
		ImageURL:   fmt.Sprintf("/static/infographics/%s.png", sessionID),
		LayoutMeta: map[string]interface{}{"template": DefaultTemplate},
	}
}

// Clone returns a copy that shares no mutable state with i
func (i *Infographic) Clone() *Infographic {
	c := *i
	if i.SessionID != nil {
		sid := *i.SessionID
		c.SessionID = &sid
	}
	c.LayoutMeta = make(map[string]interface{}, len(i.LayoutMeta))
	for k, v := range i.LayoutMeta {
		c.LayoutMeta[k] = v
	}
	return &c
}
