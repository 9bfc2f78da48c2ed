package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Client wraps the Gmail API service for sending mail as the authenticated user.
type Client struct {
	service *gmailapi.Service
}

// NewClientFromTokenSource creates a Gmail client acting as the owner of ts.
func NewClientFromTokenSource(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := gmailapi.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := gmailapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Send delivers msg from the authenticated account and returns the Gmail message id.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	raw := base64.URLEncoding.EncodeToString(msg.RFC822())
	sent, err := c.service.Users.Messages.Send("me", &gmailapi.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send gmail message: %w", err)
	}
	return sent.Id, nil
}

// RFC822 renders msg as a plain-text MIME message.
func (m Message) RFC822() []byte {
	var sb strings.Builder
	sb.WriteString("To: " + m.To + "\r\n")
	if m.From != "" {
		sb.WriteString("From: " + m.From + "\r\n")
	}
	sb.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", m.Subject) + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(m.Body)
	return []byte(sb.String())
}
