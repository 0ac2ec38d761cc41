// internal/domain/message/repository.go
package message

import (
	"context"
)

// Repository defines the append-only message log. There are deliberately no
// update or delete operations.
type Repository interface {
	// Create persists one message and fills in its assigned ID and timestamp.
	Create(ctx context.Context, m *Message) error
	// ListConversation returns messages exchanged between userA and userB in
	// either direction, most recent first, capped at limit entries.
	ListConversation(ctx context.Context, userA, userB int64, limit int) ([]*Message, error)
}
