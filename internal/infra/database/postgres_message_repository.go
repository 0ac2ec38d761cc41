// internal/infra/database/postgres_message_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"

	"shift_calendar_app/internal/domain/message"
)

// DefaultConversationLimit caps a conversation read when the caller passes
// no explicit limit.
const DefaultConversationLimit = 50

type PostgresMessageRepository struct {
	db *sql.DB
}

func NewPostgresMessageRepository(db *sql.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// Create appends one message. The database assigns both the ID and the
// creation timestamp so a send is a single atomic insert.
func (r *PostgresMessageRepository) Create(ctx context.Context, m *message.Message) error {
	query := `INSERT INTO messages (sender_id, recipient_id)
               VALUES ($1, $2)
               RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query, m.SenderID, m.RecipientID).Scan(&m.ID, &m.Timestamp)
	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}

// ListConversation returns messages between userA and userB in either
// direction, most recent first.
func (r *PostgresMessageRepository) ListConversation(ctx context.Context, userA, userB int64, limit int) ([]*message.Message, error) {
	if limit <= 0 {
		limit = DefaultConversationLimit
	}

	query := `SELECT id, sender_id, recipient_id, created_at
               FROM messages
               WHERE (sender_id = $1 AND recipient_id = $2)
                  OR (sender_id = $2 AND recipient_id = $1)
               ORDER BY created_at DESC, id DESC
               LIMIT $3`

	rows, err := r.db.QueryContext(ctx, query, userA, userB, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing conversation: %w", err)
	}
	defer rows.Close()

	messages := make([]*message.Message, 0)
	for rows.Next() {
		m := &message.Message{}
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("error scanning message: %w", err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conversation: %w", err)
	}
	return messages, nil
}
