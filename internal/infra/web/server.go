// internal/infra/web/server.go
package web

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"shift_calendar_app/internal/app"
	"shift_calendar_app/internal/domain/user"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

// Server wires the application services to the HTTP surface: the calendar
// page, the auth pages and the mur JSON endpoints.
type Server struct {
	calendarService *app.CalendarService
	messageService  *app.MessageService
	authService     *app.AuthService
	userRepo        user.Repository
	logger          *logrus.Entry
	templates       *template.Template
	router          chi.Router
}

func NewServer(
	calendarService *app.CalendarService,
	messageService *app.MessageService,
	authService *app.AuthService,
	userRepo user.Repository,
	logger *logrus.Entry,
) (*Server, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		calendarService: calendarService,
		messageService:  messageService,
		authService:     authService,
		userRepo:        userRepo,
		logger:          logger,
		templates:       templates,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(s.logRequests)

	// Public pages
	r.Get("/register", s.handleRegisterForm)
	r.Post("/register", s.handleRegister)
	r.Get("/login", s.handleLoginForm)
	r.Post("/login", s.handleLogin)

	// Authenticated surface
	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/", s.handleCalendar)
		r.Get("/logout", s.handleLogout)
		r.Post("/send_mur", s.handleSendMur)
		r.Get("/get_murs", s.handleGetMurs)
	})

	s.router = r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.WithError(err).WithField("template", name).Error("Failed to render template")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.WithError(err).Error("Failed to encode JSON response")
	}
}

func (s *Server) writeJSONError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]any{"success": false, "error": msg})
}
