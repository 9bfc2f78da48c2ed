package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"deadline-sync/internal/model"
	repo "deadline-sync/internal/task/repository"
)

// UpsertGoogleToken inserts or replaces the Google token of a user.
func (r *implRepository) UpsertGoogleToken(ctx context.Context, token model.GoogleToken) error {
	const query = `
		INSERT INTO google_tokens (user_id, access_token, refresh_token, expires_at, scope, token_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			expires_at = EXCLUDED.expires_at,
			scope = EXCLUDED.scope,
			token_type = EXCLUDED.token_type,
			updated_at = NOW()`

	_, err := r.db.Exec(ctx, query,
		token.UserID, token.AccessToken, token.RefreshToken, token.ExpiresAt, token.Scope, token.TokenType)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertGoogleToken"), err)
		return repo.ErrFailedToInsert
	}
	return nil
}

// GetGoogleToken returns the stored token, or a zero value when the user has none.
func (r *implRepository) GetGoogleToken(ctx context.Context, userID string) (model.GoogleToken, error) {
	const query = `
		SELECT user_id, access_token, refresh_token, expires_at, scope, token_type
		FROM google_tokens WHERE user_id = $1`

	var t model.GoogleToken
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&t.UserID, &t.AccessToken, &t.RefreshToken, &t.ExpiresAt, &t.Scope, &t.TokenType)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.GoogleToken{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetGoogleToken"), err)
		return model.GoogleToken{}, repo.ErrFailedToGet
	}
	return t, nil
}
