package entities

import "time"

// Config holds everything read from the environment at startup. Loaded
// once, then passed down; nothing reads os.Getenv after boot.
type Config struct {
	TelegramToken string
	OpenAIKey     string

	// AdminChatID is only meaningful when NotificationsEnabled is true.
	AdminChatID          int64
	NotificationsEnabled bool

	OpenAIBaseURL string
	OpenAIModel   string
	OpenAITimeout time.Duration

	HTTPAddr string
}
