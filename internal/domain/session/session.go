package session

import (
	"context"
	"time"
)

// Session is a server-side login session referenced by an opaque token held
// in the browser cookie.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its lifetime at the given instant.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Repository defines the operations for persisting login sessions.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	GetByToken(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
	// DeleteExpired removes sessions whose expiry is at or before the given
	// instant and returns how many rows were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
