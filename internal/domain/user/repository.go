package user

import (
	"context"
)

// Repository defines the operations for persisting and retrieving User accounts.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// ListOthers returns every user except the given one, for the recipient
	// picker on the calendar page.
	ListOthers(ctx context.Context, excludeID int64) ([]*User, error)
}
