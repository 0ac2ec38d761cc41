// internal/infra/web/middleware.go
package web

import (
	"context"
	"net/http"
	"time"

	"shift_calendar_app/internal/app"
	"shift_calendar_app/internal/domain/user"

	"github.com/sirupsen/logrus"
)

type contextKey string

const currentUserKey contextKey = "current_user"

// currentUser returns the authenticated account placed in the request
// context by requireAuth.
func currentUser(ctx context.Context) *user.User {
	u, _ := ctx.Value(currentUserKey).(*user.User)
	return u
}

// logRequests emits one structured line per handled request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Debug("Request handled")
	})
}

// requireAuth resolves the session cookie to a user and stores it in the
// request context. Anonymous requests are redirected to the login page and
// any stale cookie is cleared.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := readSessionCookie(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		u, err := s.authService.UserFromSession(r.Context(), token)
		if err != nil {
			if err != app.ErrSessionInvalid {
				s.logger.WithError(err).Error("Failed to resolve session")
				http.Error(w, "internal server error", http.StatusInternalServerError)
				return
			}
			clearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), currentUserKey, u)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
