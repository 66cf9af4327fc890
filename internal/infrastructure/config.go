package infrastructure

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"immo-assistant/internal/entities"
)

const (
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultOpenAIModel   = "gpt-4o"
	defaultOpenAITimeout = 30 * time.Second
	defaultHTTPAddr      = ":8080"
)

// ConfigError reports a missing or malformed environment variable.
// It is fatal: main logs it and exits non-zero.
type ConfigError struct {
	Variable string
	Detail   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s %s", e.Variable, e.Detail)
}

// LoadConfig reads the environment (after a best-effort .env load) into
// an immutable Config. TELEGRAM_TOKEN and OPENAI_API_KEY are required;
// ADMIN_CHAT_ID is optional and only disables notifications when absent.
func LoadConfig() (entities.Config, error) {
	// A missing .env is fine in production, variables come from the host.
	_ = godotenv.Load()

	cfg := entities.Config{
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
		OpenAIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL: defaultOpenAIBaseURL,
		OpenAIModel:   defaultOpenAIModel,
		OpenAITimeout: defaultOpenAITimeout,
		HTTPAddr:      defaultHTTPAddr,
	}

	if cfg.TelegramToken == "" {
		return entities.Config{}, &ConfigError{Variable: "TELEGRAM_TOKEN", Detail: "is missing or empty"}
	}
	if cfg.OpenAIKey == "" {
		return entities.Config{}, &ConfigError{Variable: "OPENAI_API_KEY", Detail: "is missing or empty"}
	}

	if raw := strings.TrimSpace(os.Getenv("ADMIN_CHAT_ID")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return entities.Config{}, &ConfigError{Variable: "ADMIN_CHAT_ID", Detail: "is not a valid chat ID: " + raw}
		}
		cfg.AdminChatID = id
		cfg.NotificationsEnabled = true
	}

	if v := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); v != "" {
		cfg.OpenAIBaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("OPENAI_MODEL")); v != "" {
		cfg.OpenAIModel = v
	}
	if v := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return entities.Config{}, &ConfigError{Variable: "OPENAI_TIMEOUT", Detail: "is not a valid duration: " + v}
		}
		cfg.OpenAITimeout = d
	}
	if v := strings.TrimSpace(os.Getenv("HTTP_ADDR")); v != "" {
		cfg.HTTPAddr = v
	}

	return cfg, nil
}
