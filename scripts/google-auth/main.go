// scripts/google-auth/main.go
//
// Run this locally to grant Gmail send and Calendar events access for one
// user and store the resulting token in Deadline Sync.
//
// Usage:
//   go run scripts/google-auth/main.go -user <user-id> [-creds google-credentials.json] [-api http://localhost:8080]
//
// It prints a consent URL, you log in with your Google account, paste the
// authorization code, and the token is posted to /api/v1/tasks/google/tokens.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/gmail/v1"
)

type tokenBody struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	Scope        string     `json:"scope"`
	TokenType    string     `json:"token_type"`
}

func main() {
	credsPath := flag.String("creds", "google-credentials.json", "OAuth client credentials file")
	apiURL := flag.String("api", "http://localhost:8080", "Deadline Sync base URL")
	userID := flag.String("user", "", "user id to link")
	internalKey := flag.String("internal-key", os.Getenv("INTERNAL_API_KEY"), "X-Internal-Key value, if the API requires one")
	flag.Parse()

	if *userID == "" {
		log.Fatal("-user is required")
	}

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", *credsPath, err)
	}

	scopes := []string{gmail.GmailSendScope, calendar.CalendarEventsScope}
	config, err := google.ConfigFromJSON(data, scopes...)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, *credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline, oauth2.ApprovalForce)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in with the Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	body := tokenBody{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		Scope:        strings.Join(scopes, " "),
		TokenType:    tok.TokenType,
	}
	if !tok.Expiry.IsZero() {
		expiry := tok.Expiry.UTC()
		body.ExpiresAt = &expiry
	}

	payload, err := json.Marshal(body)
	if err != nil {
		log.Fatalf("Failed to encode token: %v", err)
	}

	url := strings.TrimRight(*apiURL, "/") + "/api/v1/tasks/google/tokens"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		log.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", *userID)
	if *internalKey != "" {
		req.Header.Set("X-Internal-Key", *internalKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("Failed to store token: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		log.Fatalf("Deadline Sync rejected the token (%d): %s", resp.StatusCode, raw)
	}

	fmt.Println()
	fmt.Printf("Google account linked for user %s.\n", *userID)
}
