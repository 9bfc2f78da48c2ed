package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"deadline-sync/internal/model"
	repo "deadline-sync/internal/task/repository"
)

// GetUser retrieves a User by ID. Returns zero-value User when not found.
func (r *implRepository) GetUser(ctx context.Context, id string) (model.User, error) {
	const query = `
		SELECT id, name, email, COALESCE(telegram_chat_id, 0), is_active, created_at
		FROM users WHERE id = $1`

	var u model.User
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Name, &u.Email, &u.TelegramChatID, &u.IsActive, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// UpsertUser creates a user or updates the profile of an existing one.
func (r *implRepository) UpsertUser(ctx context.Context, user model.User) (model.User, error) {
	const query = `
		INSERT INTO users (id, name, email, telegram_chat_id, is_active)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			telegram_chat_id = EXCLUDED.telegram_chat_id,
			is_active = EXCLUDED.is_active,
			updated_at = NOW()
		RETURNING id, name, email, COALESCE(telegram_chat_id, 0), is_active, created_at`

	var chatID any
	if user.TelegramChatID != 0 {
		chatID = user.TelegramChatID
	}

	var u model.User
	err := r.db.QueryRow(ctx, query, user.ID, user.Name, user.Email, chatID, user.IsActive).
		Scan(&u.ID, &u.Name, &u.Email, &u.TelegramChatID, &u.IsActive, &u.CreatedAt)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}
