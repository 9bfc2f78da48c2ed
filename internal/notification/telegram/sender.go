package telegram

import (
	"context"
	"fmt"
	"strconv"

	"deadline-sync/internal/model"
	"deadline-sync/internal/notification"
	"deadline-sync/internal/task"
	pkgLog "deadline-sync/pkg/log"
	pkgTelegram "deadline-sync/pkg/telegram"
)

// MessageSender is the part of the Telegram bot client used for reminders.
type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) (int64, error)
}

// Sender delivers deadline reminders to the user's Telegram chat.
type Sender struct {
	l   pkgLog.Logger
	bot MessageSender
}

var _ MessageSender = (*pkgTelegram.Bot)(nil)

// NewSender creates a Telegram reminder sender.
func NewSender(l pkgLog.Logger, bot MessageSender) *Sender {
	return &Sender{l: l, bot: bot}
}

func (s *Sender) Channel() model.NotificationChannel {
	return model.ChannelTelegram
}

// SendDeadlineReminder sends the reminder to user.TelegramChatID and returns
// the Telegram message id.
func (s *Sender) SendDeadlineReminder(ctx context.Context, user model.User, t model.Task) (string, error) {
	if user.TelegramChatID == 0 {
		return "", task.ErrChannelNotLinked
	}

	text := notification.ReminderSubject(t) + "\n\n" + notification.ReminderBody(user, t)
	id, err := s.bot.SendMessage(ctx, user.TelegramChatID, text)
	if err != nil {
		return "", fmt.Errorf("telegram: %w", err)
	}

	s.l.Debugf(ctx, "notification/telegram.SendDeadlineReminder: task %s sent as %d", t.ID, id)
	return strconv.FormatInt(id, 10), nil
}
