package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "infograph-backend/pkg/errors"
)

// Well-known session statuses. Status is free text; these are the values
// the backend itself writes.
const (
	StatusPending          = "pending"
	StatusCompleted        = "completed"
	StatusInfographicReady = "infographic_ready"
)

// ResearchSession is a user's research request plus its evolving status
type ResearchSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Prompt    string    `json:"prompt"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Topic     *string   `json:"topic"`
	Tags      []string  `json:"tags"`
}

// SessionUpdate carries a partial update; nil fields are left untouched
type SessionUpdate struct {
	Status *string
	Prompt *string
	Topic  *string
	Tags   *[]string
}

// NewResearchSession creates a pending session
func NewResearchSession(userID, prompt string, topic *string, tags []string) (*ResearchSession, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, pkgerrors.NewValidationError("user_id is required")
	}
	if strings.TrimSpace(prompt) == "" {
		return nil, pkgerrors.NewValidationError("prompt is required")
	}

	return &ResearchSession{
		ID:     uuid.NewString(),
		UserID: userID,
		Prompt: prompt,
		Status: StatusPending,
		Topic:  topic,
		Tags:   normalizeTags(tags),
	}, nil
}

// Apply merges the provided fields of u into s. It validates everything
// before mutating, so a failed Apply leaves s unchanged.
func (s *ResearchSession) Apply(u SessionUpdate) error {
	if u.Status != nil && strings.TrimSpace(*u.Status) == "" {
		return pkgerrors.NewValidationError("status cannot be empty")
	}
	if u.Prompt != nil && strings.TrimSpace(*u.Prompt) == "" {
		return pkgerrors.NewValidationError("prompt cannot be empty")
	}

	if u.Status != nil {
		s.Status = *u.Status
	}
	if u.Prompt != nil {
		s.Prompt = *u.Prompt
	}
	if u.Topic != nil {
		topic := *u.Topic
		s.Topic = &topic
	}
	if u.Tags != nil {
		s.Tags = normalizeTags(*u.Tags)
	}
	return nil
}

// TopicContains reports whether the topic contains needle, ignoring case.
// Sessions without a topic never match.
func (s *ResearchSession) TopicContains(needle string) bool {
	if s.Topic == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*s.Topic), strings.ToLower(needle))
}

// HasAllTags reports whether the session's tags are a superset of want,
// compared case-insensitively.
func (s *ResearchSession) HasAllTags(want []string) bool {
	have := make(map[string]struct{}, len(s.Tags))
	for _, tag := range s.Tags {
		have[strings.ToLower(tag)] = struct{}{}
	}
	for _, tag := range want {
		if _, ok := have[strings.ToLower(tag)]; !ok {
			return false
		}
	}
	return true
}

// Clone returns a copy that shares no mutable state with s
func (s *ResearchSession) Clone() *ResearchSession {
	c := *s
	if s.Topic != nil {
		topic := *s.Topic
		c.Topic = &topic
	}
	c.Tags = append([]string(nil), s.Tags...)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return &c
}

// normalizeTags trims tags and drops blanks, keeping order
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

// ParseTagList splits a comma-separated tag filter
func ParseTagList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return normalizeTags(strings.Split(raw, ","))
}
