// internal/infra/telegram/notifier.go
package telegram

import (
	"fmt"

	"shift_calendar_app/internal/domain/user"

	"gopkg.in/telebot.v3"
)

// MurNotifier implements the app.MurNotifier interface using the
// gopkg.in/telebot.v3 library. The bot is used purely as an outbound client;
// no poller is ever started.
type MurNotifier struct {
	bot *telebot.Bot
}

func NewMurNotifier(token string) (*MurNotifier, error) {
	bot, err := telebot.NewBot(telebot.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot client: %w", err)
	}
	return &MurNotifier{bot: bot}, nil
}

// NotifyMurReceived sends a short notice to the recipient's linked Telegram
// account.
func (n *MurNotifier) NotifyMurReceived(recipient *user.User, senderName string) error {
	if !recipient.TelegramID.Valid {
		return nil
	}

	text := fmt.Sprintf("Мур! %s отправил(а) вам мур 🐾", senderName)
	chat := &telebot.User{ID: recipient.TelegramID.Int64} // direct user chat
	_, err := n.bot.Send(chat, text, &telebot.SendOptions{})
	return err
}
