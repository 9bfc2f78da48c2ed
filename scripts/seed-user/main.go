// scripts/seed-user/main.go
//
// Creates or updates a Deadline Sync user directly in PostgreSQL. Tasks,
// Google tokens and reminders all belong to a user, so run this before
// calling the API with a new X-User-ID.
//
// Usage:
//   go run scripts/seed-user/main.go -name "Ada" -email ada@example.com [-id <user-id>] [-telegram-chat-id 123]

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"deadline-sync/config"
	"deadline-sync/internal/model"
	taskRepo "deadline-sync/internal/task/repository/postgre"
	"deadline-sync/pkg/log"
	"deadline-sync/pkg/postgres"
)

func main() {
	id := flag.String("id", "", "user id (generated when empty)")
	name := flag.String("name", "", "display name")
	email := flag.String("email", "", "email address used for reminders")
	chatID := flag.Int64("telegram-chat-id", 0, "Telegram chat id for reminders")
	flag.Parse()

	if *name == "" || *email == "" {
		fmt.Println("Usage: go run scripts/seed-user/main.go -name <name> -email <email> [-id <id>] [-telegram-chat-id <id>]")
		os.Exit(1)
	}
	if *id == "" {
		*id = uuid.NewString()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		Encoding:     "console",
		ColorEnabled: true,
	})

	ctx := context.Background()

	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{DSN: cfg.Postgres.DSN(), MaxConns: 1})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := taskRepo.New(pool, logger)
	user, err := repo.UpsertUser(ctx, model.User{
		ID:             *id,
		Name:           *name,
		Email:          *email,
		TelegramChatID: *chatID,
		IsActive:       true,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to upsert user: %v", err)
	}

	logger.Infof(ctx, "User ready: id=%s email=%s", user.ID, user.Email)
	fmt.Println(user.ID)
}
