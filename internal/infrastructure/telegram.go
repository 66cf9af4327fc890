package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"immo-assistant/internal/entities"
)

// Telegram caps bots around 30 messages per second globally; staying a
// bit under avoids 429s from the Bot API.
const (
	sendRate  rate.Limit = 25
	sendBurst            = 5

	sendTimeout = 30 * time.Second
)

// SendError reports a failed outbound Telegram send. Recoverable:
// callers log it, nothing is retried.
type SendError struct {
	ChatID int64
	Err    error
}

func (e *SendError) Error() string {
	return fmt.Sprintf("telegram: send to chat %d failed: %v", e.ChatID, e.Err)
}

func (e *SendError) Unwrap() error {
	return e.Err
}

// TelegramClient wraps the Bot API with a bounded HTTP timeout and an
// outbound pacing limiter shared by replies and admin notifications.
type TelegramClient struct {
	Bot     *tgbotapi.BotAPI
	limiter *rate.Limiter
}

func NewTelegramClient(token string) (*TelegramClient, error) {
	bot, err := tgbotapi.NewBotAPIWithClient(token, tgbotapi.APIEndpoint, &http.Client{Timeout: 90 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("telegram: connect bot: %w", err)
	}
	return &TelegramClient{
		Bot:     bot,
		limiter: rate.NewLimiter(sendRate, sendBurst),
	}, nil
}

// Username returns the bot's own @username.
func (t *TelegramClient) Username() string {
	return t.Bot.Self.UserName
}

// Send delivers one plain-text message. Plain text on purpose: user
// content is echoed in admin notifications and must not break parse
// modes.
func (t *TelegramClient) Send(msg entities.OutgoingMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	if err := t.limiter.Wait(ctx); err != nil {
		return &SendError{ChatID: msg.ChatID, Err: err}
	}

	out := tgbotapi.NewMessage(msg.ChatID, msg.Text)
	if _, err := t.Bot.Send(out); err != nil {
		return &SendError{ChatID: msg.ChatID, Err: err}
	}
	return nil
}
