package user

import (
	"database/sql"
	"time"
)

// User represents a registered account. Password and session handling never
// leaks into the calendar or messaging logic; those components only see the
// numeric ID.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	TelegramID   sql.NullInt64 // optional link used for mur push notifications
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
