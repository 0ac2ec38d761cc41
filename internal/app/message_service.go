// internal/app/message_service.go
package app

import (
	"context"
	"fmt"

	"shift_calendar_app/internal/domain/message"
	"shift_calendar_app/internal/domain/user"
	idb "shift_calendar_app/internal/infra/database" // Alias for DB sentinel errors

	"github.com/sirupsen/logrus"
)

// Custom application-level errors for the message service
var ErrRecipientNotFound = fmt.Errorf("recipient user not found")

// MurNotifier pushes an out-of-band notification to a recipient about a
// received mur. Implementations must be best-effort; a failed push never
// fails the send itself.
type MurNotifier interface {
	NotifyMurReceived(recipient *user.User, senderName string) error
}

// MessageService implements mur sending and conversation reads on top of
// the append-only message log.
type MessageService struct {
	userRepo    user.Repository
	messageRepo message.Repository
	notifier    MurNotifier // may be nil when push notifications are disabled
	logger      *logrus.Entry
}

func NewMessageService(
	ur user.Repository,
	mr message.Repository,
	notifier MurNotifier,
	logger *logrus.Entry,
) *MessageService {
	return &MessageService{
		userRepo:    ur,
		messageRepo: mr,
		notifier:    notifier,
		logger:      logger,
	}
}

// Send creates and persists one mur from sender to recipient. The recipient
// must exist; nothing is written otherwise. Whether a user may mur themselves
// is caller policy — the service does not reject senderID == recipientID.
func (s *MessageService) Send(ctx context.Context, senderID, recipientID int64) (*message.Message, error) {
	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		if err == idb.ErrUserNotFound {
			return nil, ErrRecipientNotFound
		}
		return nil, fmt.Errorf("failed to check recipient: %w", err)
	}

	m := &message.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
	}
	if err := s.messageRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to persist message: %w", err)
	}

	s.notifyRecipient(ctx, m, recipient)

	return m, nil
}

// notifyRecipient pushes a Telegram notification when the recipient linked
// an account. Errors are logged and swallowed: the mur is already persisted.
func (s *MessageService) notifyRecipient(ctx context.Context, m *message.Message, recipient *user.User) {
	if s.notifier == nil || !recipient.TelegramID.Valid {
		return
	}

	notifyLogger := s.logger.WithFields(logrus.Fields{
		"message_id":   m.ID,
		"recipient_id": recipient.ID,
	})

	sender, err := s.userRepo.GetByID(ctx, m.SenderID)
	if err != nil {
		notifyLogger.WithError(err).Warn("Could not load sender for mur notification")
		return
	}

	if err := s.notifier.NotifyMurReceived(recipient, sender.Username); err != nil {
		notifyLogger.WithError(err).Warn("Failed to push mur notification")
	}
}

// Conversation returns the messages exchanged between userA and userB in
// either direction, most recent first. A non-positive limit falls back to
// the repository default.
func (s *MessageService) Conversation(ctx context.Context, userA, userB int64, limit int) ([]*message.Message, error) {
	messages, err := s.messageRepo.ListConversation(ctx, userA, userB, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}
	return messages, nil
}
