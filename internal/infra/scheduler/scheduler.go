package scheduler

import (
	"context"
	"time"

	"shift_calendar_app/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// SessionPurgeScheduler periodically removes expired login sessions. Browser
// cookies expire on their own; the server-side rows need reaping.
type SessionPurgeScheduler struct {
	cronEngine    *cron.Cron
	authService   *app.AuthService
	logger        *logrus.Entry
	cronSpecPurge string // e.g., "0 3 * * *" (3:00 AM daily)
}

func NewSessionPurgeScheduler(
	authService *app.AuthService,
	logger *logrus.Entry,
	cronSpecPurge string,
) *SessionPurgeScheduler {
	return &SessionPurgeScheduler{
		cronEngine:    cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		authService:   authService,
		logger:        logger,
		cronSpecPurge: cronSpecPurge,
	}
}

func (s *SessionPurgeScheduler) Start() error {
	s.logger.Info("Starting session purge scheduler...")

	_, err := s.cronEngine.AddFunc(s.cronSpecPurge, func() {
		s.logger.Info("Cron job triggered for expired session purge.")
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute) // Context for the job
		defer cancel()
		if _, err := s.authService.PurgeExpiredSessions(ctx); err != nil {
			s.logger.WithError(err).Error("Error during expired session purge")
		}
	})
	if err != nil {
		return err
	}

	s.cronEngine.Start()
	s.logger.Info("Session purge scheduler started.")
	return nil
}

func (s *SessionPurgeScheduler) Stop() {
	s.logger.Info("Stopping session purge scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Session purge scheduler gracefully stopped.")
}
