package google

import (
	"context"
	"errors"

	"golang.org/x/oauth2"
	oauthgoogle "golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	gmailapi "google.golang.org/api/gmail/v1"

	"deadline-sync/internal/model"
	"deadline-sync/internal/task"
)

var errMissingClientConfig = errors.New("google client credentials are missing")

// TokenStore loads the OAuth token a user granted to the service.
type TokenStore interface {
	GetGoogleToken(ctx context.Context, userID string) (model.GoogleToken, error)
}

// Config holds the OAuth client and calendar settings.
type Config struct {
	ClientID     string
	ClientSecret string
	CalendarID   string
	Timezone     string
}

// credentials turns a stored user token into a refreshing token source.
type credentials struct {
	oauth  *oauth2.Config
	tokens TokenStore
}

func newCredentials(cfg Config, tokens TokenStore, scopes ...string) credentials {
	return credentials{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     oauthgoogle.Endpoint,
			Scopes:       scopes,
		},
		tokens: tokens,
	}
}

func (c credentials) tokenSource(ctx context.Context, userID string) (oauth2.TokenSource, error) {
	if c.oauth.ClientID == "" || c.oauth.ClientSecret == "" {
		return nil, errMissingClientConfig
	}

	stored, err := c.tokens.GetGoogleToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	if stored.AccessToken == "" {
		return nil, task.ErrGoogleNotLinked
	}

	tok := &oauth2.Token{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		TokenType:    stored.TokenType,
	}
	if stored.ExpiresAt != nil {
		tok.Expiry = *stored.ExpiresAt
	}
	return c.oauth.TokenSource(ctx, tok), nil
}

var (
	gmailScopes    = []string{gmailapi.GmailSendScope}
	calendarScopes = []string{calendar.CalendarEventsScope}
)
