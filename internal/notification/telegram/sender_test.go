package telegram_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"deadline-sync/internal/model"
	"deadline-sync/internal/notification/telegram"
	"deadline-sync/internal/task"
	pkgLog "deadline-sync/pkg/log"
	pkgTelegram "deadline-sync/pkg/telegram"
)

func TestSender(t *testing.T) {
	var gotChat int64
	var gotText string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ChatID int64  `json:"chat_id"`
			Text   string `json:"text"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		gotChat, gotText = req.ChatID, req.Text
		if req.ChatID == 500 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok": true, "result": {"message_id": 901, "chat": {"id": 42, "type": "private"}}}`))
	}))
	defer ts.Close()

	bot := pkgTelegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)
	s := telegram.NewSender(pkgLog.NewNop(), bot)

	due := model.Task{ID: "t1", Title: "Report", Deadline: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), Status: model.StatusPending}

	t.Run("sends to linked chat", func(t *testing.T) {
		id, err := s.SendDeadlineReminder(context.Background(), model.User{Name: "Ada", TelegramChatID: 42}, due)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "901" {
			t.Errorf("expected message id 901, got %s", id)
		}
		if gotChat != 42 || !strings.HasPrefix(gotText, "Deadline Reminder: Report") {
			t.Errorf("unexpected request: chat=%d text=%q", gotChat, gotText)
		}
	})

	t.Run("chat not linked", func(t *testing.T) {
		_, err := s.SendDeadlineReminder(context.Background(), model.User{Name: "Ada"}, due)
		if !errors.Is(err, task.ErrChannelNotLinked) {
			t.Errorf("expected ErrChannelNotLinked, got %v", err)
		}
	})

	t.Run("api failure", func(t *testing.T) {
		if _, err := s.SendDeadlineReminder(context.Background(), model.User{TelegramChatID: 500}, due); err == nil {
			t.Error("expected error")
		}
	})

	if s.Channel() != model.ChannelTelegram {
		t.Errorf("expected telegram channel, got %s", s.Channel())
	}
}
