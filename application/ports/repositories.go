package ports

import (
	"context"
	"time"

	"infograph-backend/domain/core/entities"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Save inserts or replaces a user. A zero CreatedAt is stamped by the store.
	Save(ctx context.Context, user *entities.User) error

	// GetByID retrieves a user by its ID
	GetByID(ctx context.Context, id string) (*entities.User, error)

	// List returns all users in insertion order
	List(ctx context.Context) ([]*entities.User, error)

	// Delete removes a user
	Delete(ctx context.Context, id string) error
}

// SessionReader is the read-only view of research sessions
type SessionReader interface {
	GetByID(ctx context.Context, id string) (*entities.ResearchSession, error)
}

// SessionFilter narrows a session listing. Zero values disable a criterion.
type SessionFilter struct {
	UserID string
	Topic  string
	Start  *time.Time
	End    *time.Time
	Tags   []string
}

// SessionRepository defines the interface for session persistence
type SessionRepository interface {
	SessionReader

	// Create stores a new session and stamps its CreatedAt
	Create(ctx context.Context, session *entities.ResearchSession) error

	// Update replaces an existing session
	Update(ctx context.Context, session *entities.ResearchSession) error

	// List returns sessions matching filter in insertion order
	List(ctx context.Context, filter SessionFilter) ([]*entities.ResearchSession, error)
}

// SourceReader is the read-only view of a session's sources
type SourceReader interface {
	ListBySession(ctx context.Context, sessionID string) ([]entities.Source, error)
}

// SourceRepository defines the interface for source persistence
type SourceRepository interface {
	SourceReader

	// ReplaceForSession swaps the session's source list for sources
	ReplaceForSession(ctx context.Context, sessionID string, sources []entities.Source) error

	// Append adds one source to the end of the session's list
	Append(ctx context.Context, sessionID string, source entities.Source) error
}

// MessageReader is the read-only view of chat messages
type MessageReader interface {
	GetByID(ctx context.Context, id string) (*entities.Message, error)

	// ListBySession returns messages ordered by CreatedAt, ties by insertion
	ListBySession(ctx context.Context, sessionID string) ([]*entities.Message, error)
}

// MessageRepository defines the interface for message persistence
type MessageRepository interface {
	MessageReader

	// Create stores a message and stamps its CreatedAt
	Create(ctx context.Context, message *entities.Message) error
}

// InfographicReader is the read-only view of infographic records
type InfographicReader interface {
	GetByID(ctx context.Context, id string) (*entities.Infographic, error)

	// GetBySession returns the latest infographic attached to a session
	GetBySession(ctx context.Context, sessionID string) (*entities.Infographic, error)
}

// InfographicRepository defines the interface for infographic persistence
type InfographicRepository interface {
	InfographicReader

	// Save stores the record and, when it has a session id, makes it that
	// session's current infographic.
	Save(ctx context.Context, infographic *entities.Infographic) error
}

// ImageStore keeps rendered image bytes keyed by infographic id
type ImageStore interface {
	Put(ctx context.Context, id string, data []byte) error
	Get(ctx context.Context, id string) ([]byte, error)
}

// Cache is a byte-oriented cache with per-entry TTL
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context, pattern string) error
}
