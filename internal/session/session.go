// Package session holds the logged-in user's lifecycle: a Session is created
// on login, handed explicitly to whatever needs it, and deleted on logout.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/prithvinet/backend/internal/domain"
)

var (
	ErrNotFound     = errors.New("session: not found")
	ErrExpired      = errors.New("session: expired")
	ErrInvalidToken = errors.New("session: invalid token")
)

// KeyPrefix namespaces stored sessions
const KeyPrefix = "prithvi-user:"

// Session is one authenticated user's login
type Session struct {
	ID        string      `json:"id"`
	User      domain.User `json:"user"`
	IssuedAt  time.Time   `json:"issued_at"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// New opens a session for the user
func New(user domain.User, ttl time.Duration, now time.Time) Session {
	return Session{
		ID:        uuid.NewString(),
		User:      user,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

// Expired reports whether the session is past its expiry
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Can checks the session user's role for a capability
func (s Session) Can(c domain.Capability) bool {
	return domain.Can(s.User.Role, c)
}

// Store persists sessions between requests
type Store interface {
	Save(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	Delete(ctx context.Context, id string) error
}
