// internal/app/auth_service.go
package app

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"shift_calendar_app/internal/domain/session"
	"shift_calendar_app/internal/domain/user"
	idb "shift_calendar_app/internal/infra/database"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Custom application-level errors for the auth service
var ErrUsernameTaken = fmt.Errorf("username is already taken")
var ErrEmailTaken = fmt.Errorf("email is already registered")
var ErrInvalidCredentials = fmt.Errorf("invalid username or password")
var ErrInvalidRegistration = fmt.Errorf("username, email and password must not be empty")
var ErrSessionInvalid = fmt.Errorf("session is missing or expired")

// AuthService implements registration, login and server-side sessions.
type AuthService struct {
	userRepo    user.Repository
	sessionRepo session.Repository
	lifetime    time.Duration
	logger      *logrus.Entry
	now         func() time.Time // injectable clock for tests
}

func NewAuthService(
	ur user.Repository,
	sr session.Repository,
	lifetime time.Duration,
	logger *logrus.Entry,
	now func() time.Time,
) *AuthService {
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		userRepo:    ur,
		sessionRepo: sr,
		lifetime:    lifetime,
		logger:      logger,
		now:         now,
	}
}

// Register creates a new account with a bcrypt-hashed password. telegramID
// is optional and only used for mur push notifications.
func (s *AuthService) Register(ctx context.Context, username, email, password string, telegramID *int64) (*user.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, ErrInvalidRegistration
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var tgID sql.NullInt64
	if telegramID != nil {
		tgID.Int64 = *telegramID
		tgID.Valid = true
	}

	newUser := &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		TelegramID:   tgID,
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		switch err {
		case idb.ErrDuplicateUsername:
			return nil, ErrUsernameTaken
		case idb.ErrDuplicateEmail:
			return nil, ErrEmailTaken
		default:
			return nil, fmt.Errorf("failed to create user in repository: %w", err)
		}
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  newUser.ID,
		"username": newUser.Username,
	}).Info("New user registered")

	return newUser, nil
}

// Login verifies the credentials and issues a new session. The caller is
// responsible for putting the session token into a cookie.
func (s *AuthService) Login(ctx context.Context, username, password string) (*user.User, *session.Session, error) {
	u, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if err == idb.ErrUserNotFound {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up user for login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	now := s.now()
	sess := &session.Session{
		Token:     uuid.NewString(),
		UserID:    u.ID,
		ExpiresAt: now.Add(s.lifetime),
	}
	if err := s.sessionRepo.Create(ctx, sess); err != nil {
		return nil, nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.WithField("user_id", u.ID).Info("User logged in")

	return u, sess, nil
}

// Logout removes the session. Unknown tokens are not an error: the outcome
// the caller wants (no such session) already holds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if err := s.sessionRepo.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// UserFromSession resolves a session token to its account. Missing and
// expired sessions both come back as ErrSessionInvalid.
func (s *AuthService) UserFromSession(ctx context.Context, token string) (*user.User, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}

	sess, err := s.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		if err == idb.ErrSessionNotFound {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	if sess.Expired(s.now()) {
		return nil, ErrSessionInvalid
	}

	u, err := s.userRepo.GetByID(ctx, sess.UserID)
	if err != nil {
		if err == idb.ErrUserNotFound {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	return u, nil
}

// PurgeExpiredSessions deletes sessions past their expiry. Invoked by the
// scheduler, not by request handlers.
func (s *AuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := s.sessionRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired sessions: %w", err)
	}
	if removed > 0 {
		s.logger.WithField("removed", removed).Info("Purged expired sessions")
	}
	return removed, nil
}
