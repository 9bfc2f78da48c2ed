package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deadline-sync/config"
	_ "deadline-sync/docs" // Swagger docs
	"deadline-sync/internal/httpserver"
	"deadline-sync/internal/middleware"
	googleNotify "deadline-sync/internal/notification/google"
	telegramNotify "deadline-sync/internal/notification/telegram"
	"deadline-sync/internal/task"
	taskHTTP "deadline-sync/internal/task/delivery/http"
	taskRepo "deadline-sync/internal/task/repository/postgre"
	"deadline-sync/internal/task/usecase"
	"deadline-sync/pkg/log"
	"deadline-sync/pkg/postgres"
	"deadline-sync/pkg/telegram"
)

// @title       Deadline Sync API
// @description Deadline tracking with urgency scoring, prioritization, analytics and Google/Telegram reminders.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Deadline Sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	dsn := cfg.Postgres.DSN()
	if cfg.Migrations.Enabled {
		applied, err := postgres.RunMigrations(dsn, cfg.Migrations.Path)
		if err != nil {
			logger.Error(ctx, "Failed to run migrations: ", err)
			return
		}
		if applied {
			logger.Info(ctx, "Database migrations applied")
		}
	}

	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DSN:             dsn,
		MaxConns:        cfg.Postgres.MaxConns,
		MinConns:        cfg.Postgres.MinConns,
		MaxConnLifetime: cfg.Postgres.MaxConnLifetime,
	})
	if err != nil {
		logger.Error(ctx, "Failed to connect to postgres: ", err)
		return
	}
	defer pool.Close()

	// 4. Task domain
	repo := taskRepo.New(pool, logger)

	googleCfg := googleNotify.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		CalendarID:   cfg.Google.CalendarID,
		Timezone:     cfg.Google.Timezone,
	}
	if googleCfg.ClientID == "" || googleCfg.ClientSecret == "" {
		logger.Warn(ctx, "Google client credentials missing: Gmail reminders and Calendar sync will fail")
	}

	var sender task.ReminderSender
	switch cfg.Notification.Channel {
	case config.ChannelTelegram:
		sender = telegramNotify.NewSender(logger, telegram.NewBot(cfg.Telegram.BotToken))
	default:
		sender = googleNotify.NewSender(logger, repo, googleCfg)
	}
	logger.Infof(ctx, "Reminder channel: %s", sender.Channel())

	calendar := googleNotify.NewCalendar(logger, repo, googleCfg)
	taskUC := usecase.New(logger, repo, sender, calendar, time.Now)
	taskHandler := taskHTTP.New(logger, taskUC)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReadTimeout:     cfg.HTTPServer.ReadTimeout,
		WriteTimeout:    cfg.HTTPServer.WriteTimeout,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		Database:        pool,
		Middleware:      middleware.New(logger, cfg.Internal.APIKey, cfg.Notification.RateLimitPerMin),
		TaskHandler:     taskHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
