package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"deadline-sync/internal/model"
	"deadline-sync/internal/task"
)

const defaultTokenType = "Bearer"

// UpsertGoogleToken stores the OAuth token the user granted for Gmail and Calendar.
func (uc *implUseCase) UpsertGoogleToken(ctx context.Context, sc model.Scope, input task.GoogleTokenInput) error {
	if strings.TrimSpace(input.AccessToken) == "" {
		return task.ErrEmptyAccessToken
	}

	tokenType := input.TokenType
	if tokenType == "" {
		tokenType = defaultTokenType
	}

	err := uc.repo.UpsertGoogleToken(ctx, model.GoogleToken{
		UserID:       sc.UserID,
		AccessToken:  input.AccessToken,
		RefreshToken: input.RefreshToken,
		ExpiresAt:    input.ExpiresAt,
		Scope:        input.Scope,
		TokenType:    tokenType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpsertGoogleToken UpsertGoogleToken: %v", err)
		return err
	}
	return nil
}

// SendReminder delivers a deadline reminder for a task through the configured channel.
func (uc *implUseCase) SendReminder(ctx context.Context, sc model.Scope, id string) (task.NotifyOutput, error) {
	now := uc.now()
	t, err := uc.getOwnedTask(ctx, sc, id, "SendReminder")
	if err != nil {
		return task.NotifyOutput{}, err
	}
	user, err := uc.getUser(ctx, sc, "SendReminder")
	if err != nil {
		return task.NotifyOutput{}, err
	}
	if uc.sender == nil {
		return task.NotifyOutput{}, task.ErrProviderUnavailable
	}

	channel := uc.sender.Channel()
	messageID, err := uc.sender.SendDeadlineReminder(ctx, user, t)
	if err != nil {
		if isNotLinked(err) {
			return task.NotifyOutput{}, err
		}
		uc.l.Errorf(ctx, "uc.SendReminder SendDeadlineReminder: %v", err)
		uc.recordNotification(ctx, t, channel, "", err, now)
		return task.NotifyOutput{}, fmt.Errorf("%w: %v", task.ErrProviderUnavailable, err)
	}

	uc.recordNotification(ctx, t, channel, messageID, nil, now)
	uc.l.Infof(ctx, "uc.SendReminder: task %s reminded via %s", t.ID, channel)

	return task.NotifyOutput{Channel: channel, MessageID: messageID}, nil
}

// SyncCalendar creates or updates the calendar event of a task and stores its id.
func (uc *implUseCase) SyncCalendar(ctx context.Context, sc model.Scope, id string) (task.CalendarOutput, error) {
	now := uc.now()
	t, err := uc.getOwnedTask(ctx, sc, id, "SyncCalendar")
	if err != nil {
		return task.CalendarOutput{}, err
	}
	user, err := uc.getUser(ctx, sc, "SyncCalendar")
	if err != nil {
		return task.CalendarOutput{}, err
	}
	if uc.calendar == nil {
		return task.CalendarOutput{}, task.ErrProviderUnavailable
	}

	eventID, err := uc.calendar.UpsertCalendarEvent(ctx, user, t, t.CalendarEventID)
	if err != nil {
		if isNotLinked(err) {
			return task.CalendarOutput{}, err
		}
		uc.l.Errorf(ctx, "uc.SyncCalendar UpsertCalendarEvent: %v", err)
		uc.recordNotification(ctx, t, model.ChannelCalendar, t.CalendarEventID, err, now)
		return task.CalendarOutput{}, fmt.Errorf("%w: %v", task.ErrProviderUnavailable, err)
	}

	if eventID != t.CalendarEventID {
		if err := uc.repo.SetCalendarEventID(ctx, t.ID, eventID); err != nil {
			uc.l.Errorf(ctx, "uc.SyncCalendar SetCalendarEventID: %v", err)
			return task.CalendarOutput{}, err
		}
	}
	uc.recordNotification(ctx, t, model.ChannelCalendar, eventID, nil, now)

	return task.CalendarOutput{EventID: eventID}, nil
}

func isNotLinked(err error) bool {
	return errors.Is(err, task.ErrGoogleNotLinked) || errors.Is(err, task.ErrChannelNotLinked)
}
