package model

import "time"

// User is the owner of tasks and the recipient of reminders.
type User struct {
	ID             string
	Name           string
	Email          string
	TelegramChatID int64
	IsActive       bool
	CreatedAt      time.Time
}

// GoogleToken is the OAuth token a user granted for Gmail and Calendar.
type GoogleToken struct {
	UserID       string
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
	Scope        string
	TokenType    string
}

// NotificationChannel is the delivery channel of a Notification.
type NotificationChannel string

const (
	ChannelEmail    NotificationChannel = "email"
	ChannelTelegram NotificationChannel = "telegram"
	ChannelCalendar NotificationChannel = "calendar"
)

// NotificationStatus is the outcome of a Notification.
type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// Notification records one outbound reminder or calendar sync.
type Notification struct {
	ID           string
	UserID       string
	TaskID       string
	Channel      NotificationChannel
	Status       NotificationStatus
	ExternalID   string
	ErrorMessage string
	SentAt       time.Time
}
