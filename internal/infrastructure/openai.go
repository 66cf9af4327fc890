package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"immo-assistant/internal/entities"
)

// systemPrompt is the fixed persona sent with every completion request.
const systemPrompt = "Vous êtes Mathieu Lantoine, agent immobilier spécialisé à Nice (06). " +
	"Vous répondez en tant qu'assistant virtuel de Mathieu Lantoine. " +
	"Vous devez répondre en français de manière factuelle, professionnelle et modeste. " +
	"Si vous n'êtes pas certain d'une réponse, dites-le plutôt que de deviner. " +
	"Si une question sort du domaine de l'immobilier ou du droit immobilier " +
	"français, expliquez poliment que vous ne pouvez répondre qu'à ce type de question."

// CompletionReason categorizes why a completion call failed.
type CompletionReason string

const (
	ReasonNetwork     CompletionReason = "network"
	ReasonAuth        CompletionReason = "auth"
	ReasonRateLimited CompletionReason = "rate_limited"
	ReasonUpstream    CompletionReason = "upstream"
	ReasonBadResponse CompletionReason = "bad_response"
)

// CompletionError carries the upstream failure cause. It is logged and
// never shown to end users.
type CompletionError struct {
	Reason     CompletionReason
	StatusCode int
	Err        error
}

func (e *CompletionError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("openai: %s (status %d): %v", e.Reason, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("openai: %s: %v", e.Reason, e.Err)
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Index   int         `json:"index"`
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// OpenAIClient calls the Chat Completions endpoint with a fixed persona.
type OpenAIClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewOpenAIClient(cfg entities.Config) *OpenAIClient {
	timeout := cfg.OpenAITimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	baseURL := strings.TrimRight(cfg.OpenAIBaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return &OpenAIClient{
		baseURL:    baseURL,
		apiKey:     cfg.OpenAIKey,
		model:      cfg.OpenAIModel,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Complete sends the user question with the persona prompt and returns
// the first choice. One outbound call, no retries.
func (c *OpenAIClient) Complete(ctx context.Context, question string) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: question},
		},
		Temperature: 0.3,
		MaxTokens:   800,
	})
	if err != nil {
		return "", &CompletionError{Reason: ReasonBadResponse, Err: fmt.Errorf("marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", &CompletionError{Reason: ReasonNetwork, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &CompletionError{Reason: ReasonNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &CompletionError{
			Reason:     reasonForStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", &CompletionError{Reason: ReasonNetwork, Err: fmt.Errorf("read response body: %w", err)}
	}

	var completion chatResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return "", &CompletionError{Reason: ReasonBadResponse, Err: fmt.Errorf("decode response: %w", err)}
	}
	if len(completion.Choices) == 0 {
		return "", &CompletionError{Reason: ReasonBadResponse, Err: errors.New("no choices in response")}
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}

func reasonForStatus(status int) CompletionReason {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ReasonAuth
	case status == http.StatusTooManyRequests:
		return ReasonRateLimited
	default:
		return ReasonUpstream
	}
}
