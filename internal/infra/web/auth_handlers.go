// internal/infra/web/auth_handlers.go
package web

import (
	"net/http"
	"strconv"
	"strings"

	"shift_calendar_app/internal/app"

	"github.com/sirupsen/logrus"
)

// authPageData feeds the login and register templates.
type authPageData struct {
	Flash *flashNotice
	Error string
	// Form echoes submitted values back into the inputs after a failed attempt.
	Form map[string]string
}

func (s *Server) handleRegisterForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "register.html", authPageData{Flash: readAndClearFlash(w, r)})
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	handlerLogger := s.logger.WithField("handler", "POST /register")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")
	form := map[string]string{
		"username":    username,
		"email":       email,
		"telegram_id": r.FormValue("telegram_id"),
	}

	if password != confirm {
		s.render(w, "register.html", authPageData{Error: "Пароли не совпадают", Form: form})
		return
	}

	var telegramID *int64
	if raw := strings.TrimSpace(r.FormValue("telegram_id")); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			s.render(w, "register.html", authPageData{Error: "Telegram ID должен быть числом", Form: form})
			return
		}
		telegramID = &parsed
	}

	newUser, err := s.authService.Register(r.Context(), username, email, password, telegramID)
	if err != nil {
		logWithError := handlerLogger.WithError(err)
		switch err {
		case app.ErrInvalidRegistration:
			logWithError.Warn("Invalid registration form")
			s.render(w, "register.html", authPageData{Error: "Заполните все обязательные поля", Form: form})
		case app.ErrUsernameTaken:
			logWithError.Warn("Username already taken")
			s.render(w, "register.html", authPageData{Error: "Имя пользователя уже занято", Form: form})
		case app.ErrEmailTaken:
			logWithError.Warn("Email already registered")
			s.render(w, "register.html", authPageData{Error: "Этот email уже зарегистрирован", Form: form})
		default:
			logWithError.Error("Failed to register user")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	handlerLogger.WithFields(logrus.Fields{
		"user_id":  newUser.ID,
		"username": newUser.Username,
	}).Info("User registered via web form")

	writeFlash(w, "success", "Регистрация успешна! Теперь вы можете войти в систему.")
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (s *Server) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	s.render(w, "login.html", authPageData{Flash: readAndClearFlash(w, r)})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	handlerLogger := s.logger.WithField("handler", "POST /login")

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	username := r.FormValue("username")
	_, sess, err := s.authService.Login(r.Context(), username, r.FormValue("password"))
	if err != nil {
		if err == app.ErrInvalidCredentials {
			handlerLogger.WithField("username", username).Warn("Failed login attempt")
			s.render(w, "login.html", authPageData{
				Error: "Неверное имя пользователя или пароль",
				Form:  map[string]string{"username": username},
			})
			return
		}
		handlerLogger.WithError(err).Error("Failed to log user in")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeSessionCookie(w, sess.Token, sess.ExpiresAt)
	writeFlash(w, "success", "Вы успешно вошли в систему")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if token, ok := readSessionCookie(r); ok {
		if err := s.authService.Logout(r.Context(), token); err != nil {
			s.logger.WithError(err).Error("Failed to delete session on logout")
		}
	}
	clearSessionCookie(w)
	writeFlash(w, "success", "Вы вышли из системы")
	http.Redirect(w, r, "/login", http.StatusFound)
}
