package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "infograph-backend/pkg/errors"
)

// User is an account that owns research sessions
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a user with a fresh id. createdAt is assigned by the store.
func NewUser(email string, name *string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, pkgerrors.NewValidationError("email is required")
	}
	return &User{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
	}, nil
}

// Clone returns a copy that shares no mutable state with u
func (u *User) Clone() *User {
	c := *u
	if u.Name != nil {
		name := *u.Name
		c.Name = &name
	}
	return &c
}
