// internal/infra/database/postgres_session_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"shift_calendar_app/internal/domain/session"
)

var ErrSessionNotFound = fmt.Errorf("session not found")

type PostgresSessionRepository struct {
	db *sql.DB
}

func NewPostgresSessionRepository(db *sql.DB) *PostgresSessionRepository {
	return &PostgresSessionRepository{db: db}
}

func (r *PostgresSessionRepository) Create(ctx context.Context, s *session.Session) error {
	query := `INSERT INTO sessions (token, user_id, expires_at)
               VALUES ($1, $2, $3)
               RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, s.Token, s.UserID, s.ExpiresAt).Scan(&s.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating session: %w", err)
	}
	return nil
}

func (r *PostgresSessionRepository) GetByToken(ctx context.Context, token string) (*session.Session, error) {
	query := `SELECT token, user_id, created_at, expires_at
               FROM sessions WHERE token = $1`
	s := &session.Session{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(&s.Token, &s.UserID, &s.CreatedAt, &s.ExpiresAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("error getting session by token: %w", err)
	}
	return s, nil
}

func (r *PostgresSessionRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM sessions WHERE token = $1`
	if _, err := r.db.ExecContext(ctx, query, token); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func (r *PostgresSessionRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at <= $1`
	res, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("error deleting expired sessions: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error counting deleted sessions: %w", err)
	}
	return affected, nil
}
