package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"deadline-sync/internal/model"
	"deadline-sync/pkg/gcalendar"
	pkgLog "deadline-sync/pkg/log"
)

// EventDuration is the length of the calendar block placed at a deadline.
const EventDuration = time.Hour

// Calendar keeps one Google Calendar event per task.
type Calendar struct {
	l          pkgLog.Logger
	creds      credentials
	calendarID string
	timezone   string
	newClient  func(ctx context.Context, ts oauth2.TokenSource) (*gcalendar.Client, error)
}

// NewCalendar creates a Google Calendar synchronizer.
func NewCalendar(l pkgLog.Logger, tokens TokenStore, cfg Config) *Calendar {
	tz := cfg.Timezone
	if tz == "" {
		tz = "UTC"
	}
	return &Calendar{
		l:          l,
		creds:      newCredentials(cfg, tokens, calendarScopes...),
		calendarID: cfg.CalendarID,
		timezone:   tz,
		newClient:  gcalendar.NewClientFromTokenSource,
	}
}

// UpsertCalendarEvent updates existingEventID or creates a new event when it
// is empty or was removed from the calendar.
func (c *Calendar) UpsertCalendarEvent(ctx context.Context, user model.User, t model.Task, existingEventID string) (string, error) {
	ts, err := c.creds.tokenSource(ctx, user.ID)
	if err != nil {
		return "", err
	}

	client, err := c.newClient(ctx, ts)
	if err != nil {
		c.l.Errorf(ctx, "notification/google.UpsertCalendarEvent newClient: %v", err)
		return "", err
	}

	req := gcalendar.EventRequest{
		CalendarID:  c.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   t.Deadline.UTC(),
		EndTime:     t.Deadline.UTC().Add(EventDuration),
		Timezone:    c.timezone,
	}

	if existingEventID != "" {
		ev, err := client.UpdateEvent(ctx, existingEventID, req)
		if err == nil {
			return ev.ID, nil
		}
		if !isGone(err) {
			return "", fmt.Errorf("calendar: %w", err)
		}
		c.l.Warnf(ctx, "notification/google.UpsertCalendarEvent: event %s is gone, creating a new one", existingEventID)
	}

	ev, err := client.CreateEvent(ctx, req)
	if err != nil {
		return "", fmt.Errorf("calendar: %w", err)
	}
	return ev.ID, nil
}

func isGone(err error) bool {
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	return gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone
}
