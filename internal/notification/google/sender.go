package google

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"

	"deadline-sync/internal/model"
	"deadline-sync/internal/notification"
	"deadline-sync/pkg/gmail"
	pkgLog "deadline-sync/pkg/log"
)

// Sender delivers deadline reminders by mail from the user's own Gmail account.
type Sender struct {
	l         pkgLog.Logger
	creds     credentials
	newClient func(ctx context.Context, ts oauth2.TokenSource) (*gmail.Client, error)
}

// NewSender creates a Gmail reminder sender.
func NewSender(l pkgLog.Logger, tokens TokenStore, cfg Config) *Sender {
	return &Sender{
		l:         l,
		creds:     newCredentials(cfg, tokens, gmailScopes...),
		newClient: gmail.NewClientFromTokenSource,
	}
}

func (s *Sender) Channel() model.NotificationChannel {
	return model.ChannelEmail
}

// SendDeadlineReminder mails the reminder to user.Email and returns the Gmail message id.
func (s *Sender) SendDeadlineReminder(ctx context.Context, user model.User, t model.Task) (string, error) {
	ts, err := s.creds.tokenSource(ctx, user.ID)
	if err != nil {
		return "", err
	}

	client, err := s.newClient(ctx, ts)
	if err != nil {
		s.l.Errorf(ctx, "notification/google.SendDeadlineReminder newClient: %v", err)
		return "", err
	}

	id, err := client.Send(ctx, gmail.Message{
		To:      user.Email,
		From:    user.Email,
		Subject: notification.ReminderSubject(t),
		Body:    notification.ReminderBody(user, t),
	})
	if err != nil {
		return "", fmt.Errorf("gmail: %w", err)
	}

	s.l.Debugf(ctx, "notification/google.SendDeadlineReminder: task %s sent as %s", t.ID, id)
	return id, nil
}
