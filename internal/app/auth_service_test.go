package app_test

import (
	"context"
	"testing"
	"time"

	"shift_calendar_app/internal/app"
	"shift_calendar_app/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sessionLifetime = 31 * 24 * time.Hour

func newAuthService(clock *testutil.Clock) (*app.AuthService, *testutil.InMemoryUserRepo, *testutil.InMemorySessionRepo) {
	userRepo := testutil.NewInMemoryUserRepo()
	sessionRepo := testutil.NewInMemorySessionRepo()
	var now func() time.Time
	if clock != nil {
		now = clock.Now
	}
	svc := app.NewAuthService(userRepo, sessionRepo, sessionLifetime, newTestLogger(), now)
	return svc, userRepo, sessionRepo
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(nil)

	registered, err := svc.Register(ctx, "alice", "alice@example.com", "password123", nil)
	require.NoError(t, err)
	assert.NotZero(t, registered.ID)
	assert.NotEqual(t, "password123", registered.PasswordHash, "password must be stored hashed")

	loggedIn, sess, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
	require.NotNil(t, sess)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, registered.ID, sess.UserID)

	resolved, err := svc.UserFromSession(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resolved.ID)
}

func TestRegisterValidation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(nil)

	_, err := svc.Register(ctx, "", "a@example.com", "pw", nil)
	assert.ErrorIs(t, err, app.ErrInvalidRegistration)
	_, err = svc.Register(ctx, "alice", "", "pw", nil)
	assert.ErrorIs(t, err, app.ErrInvalidRegistration)
	_, err = svc.Register(ctx, "alice", "a@example.com", "", nil)
	assert.ErrorIs(t, err, app.ErrInvalidRegistration)
}

func TestRegisterDuplicates(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(nil)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123", nil)
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other@example.com", "password123", nil)
	assert.ErrorIs(t, err, app.ErrUsernameTaken)

	_, err = svc.Register(ctx, "alice2", "alice@example.com", "password123", nil)
	assert.ErrorIs(t, err, app.ErrEmailTaken)
}

func TestRegisterStoresOptionalTelegramID(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(nil)

	tgID := int64(123456)
	registered, err := svc.Register(ctx, "alice", "alice@example.com", "password123", &tgID)
	require.NoError(t, err)
	require.True(t, registered.TelegramID.Valid)
	assert.Equal(t, tgID, registered.TelegramID.Int64)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(nil)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123", nil)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "alice", "wrongpassword")
	assert.ErrorIs(t, err, app.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, app.ErrInvalidCredentials)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newAuthService(nil)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123", nil)
	require.NoError(t, err)
	_, sess, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.Token))

	_, err = svc.UserFromSession(ctx, sess.Token)
	assert.ErrorIs(t, err, app.ErrSessionInvalid)
}

func TestSessionExpiry(t *testing.T) {
	ctx := context.Background()
	clock := testutil.NewClock(time.Date(2025, time.March, 17, 10, 0, 0, 0, time.UTC))
	svc, _, sessionRepo := newAuthService(clock)

	_, err := svc.Register(ctx, "alice", "alice@example.com", "password123", nil)
	require.NoError(t, err)
	_, sess, err := svc.Login(ctx, "alice", "password123")
	require.NoError(t, err)

	// Still valid just before the lifetime elapses.
	clock.Advance(sessionLifetime - time.Minute)
	_, err = svc.UserFromSession(ctx, sess.Token)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = svc.UserFromSession(ctx, sess.Token)
	assert.ErrorIs(t, err, app.ErrSessionInvalid)

	// The purge job removes the row entirely.
	removed, err := svc.PurgeExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
	assert.Zero(t, sessionRepo.Len())
}

func TestUserFromSessionRejectsEmptyToken(t *testing.T) {
	svc, _, _ := newAuthService(nil)
	_, err := svc.UserFromSession(context.Background(), "")
	assert.ErrorIs(t, err, app.ErrSessionInvalid)
}
