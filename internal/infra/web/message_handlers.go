// internal/infra/web/message_handlers.go
package web

import (
	"net/http"
	"strconv"

	"shift_calendar_app/internal/app"
	idb "shift_calendar_app/internal/infra/database"

	"github.com/sirupsen/logrus"
)

// timestampLayout is the wire format for message timestamps.
const timestampLayout = "15:04:05"

// murSummary is the JSON shape of one message in a conversation read.
type murSummary struct {
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp"`
}

func (s *Server) handleSendMur(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	handlerLogger := s.logger.WithFields(logrus.Fields{
		"handler":   "POST /send_mur",
		"sender_id": u.ID,
	})

	if err := r.ParseForm(); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "неверный формат запроса")
		return
	}

	recipientID, err := strconv.ParseInt(r.FormValue("recipient_id"), 10, 64)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "recipient_id должен быть числом")
		return
	}

	m, err := s.messageService.Send(r.Context(), u.ID, recipientID)
	if err != nil {
		if err == app.ErrRecipientNotFound {
			handlerLogger.WithField("recipient_id", recipientID).Warn("Mur to unknown recipient")
			s.writeJSONError(w, http.StatusNotFound, "получатель не найден")
			return
		}
		handlerLogger.WithError(err).Error("Failed to send mur")
		s.writeJSONError(w, http.StatusInternalServerError, "не удалось отправить мур")
		return
	}

	handlerLogger.WithFields(logrus.Fields{
		"message_id":   m.ID,
		"recipient_id": recipientID,
	}).Info("Mur sent")

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"sender":    u.Username,
		"timestamp": m.Timestamp.Format(timestampLayout),
	})
}

func (s *Server) handleGetMurs(w http.ResponseWriter, r *http.Request) {
	u := currentUser(r.Context())
	handlerLogger := s.logger.WithFields(logrus.Fields{
		"handler": "GET /get_murs",
		"user_id": u.ID,
	})

	otherID, err := strconv.ParseInt(r.URL.Query().Get("with"), 10, 64)
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "параметр with должен быть числом")
		return
	}

	// An absent limit means the repository default; an explicit one must be
	// a positive integer, it is never silently coerced.
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 {
			s.writeJSONError(w, http.StatusBadRequest, "параметр limit должен быть положительным числом")
			return
		}
	}

	other, err := s.userRepo.GetByID(r.Context(), otherID)
	if err != nil {
		if err == idb.ErrUserNotFound {
			s.writeJSONError(w, http.StatusNotFound, "пользователь не найден")
			return
		}
		handlerLogger.WithError(err).Error("Failed to load conversation partner")
		s.writeJSONError(w, http.StatusInternalServerError, "не удалось загрузить переписку")
		return
	}

	messages, err := s.messageService.Conversation(r.Context(), u.ID, other.ID, limit)
	if err != nil {
		handlerLogger.WithError(err).Error("Failed to list conversation")
		s.writeJSONError(w, http.StatusInternalServerError, "не удалось загрузить переписку")
		return
	}

	// Only two identities can appear as senders in a conversation.
	names := map[int64]string{u.ID: u.Username, other.ID: other.Username}

	murs := make([]murSummary, 0, len(messages))
	for _, m := range messages {
		murs = append(murs, murSummary{
			Sender:    names[m.SenderID],
			Timestamp: m.Timestamp.Format(timestampLayout),
		})
	}
	s.writeJSON(w, http.StatusOK, murs)
}
