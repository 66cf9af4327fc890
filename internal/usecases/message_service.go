package usecases

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"immo-assistant/internal/entities"
	"immo-assistant/internal/interfaces"
)

// Admin notifications quote the offending message truncated to this
// many runes.
const notifyExcerptLen = 200

// MessageService runs the per-message pipeline: sensitive-keyword scan
// (side-channel admin notify), topic classification, completion,
// assembly, send.
type MessageService struct {
	ai        interfaces.AIClient
	messenger interfaces.Messenger

	adminChatID   int64
	notifyEnabled bool
	aiTimeout     time.Duration

	notifyWG sync.WaitGroup
}

func NewMessageService(ai interfaces.AIClient, messenger interfaces.Messenger, cfg entities.Config) *MessageService {
	return &MessageService{
		ai:            ai,
		messenger:     messenger,
		adminChatID:   cfg.AdminChatID,
		notifyEnabled: cfg.NotificationsEnabled,
		aiTimeout:     cfg.OpenAITimeout,
	}
}

// ProcessMessage handles one inbound message end to end. The returned
// error reports a failed primary send; everything else is logged and
// absorbed here.
func (s *MessageService) ProcessMessage(msg entities.IncomingMessage) error {
	text := strings.TrimSpace(msg.Text)

	if match := DetectSensitive(text); !match.Empty() {
		log.Printf("[chat %d] sensitive keywords detected: %s", msg.ChatID, strings.Join(match.Terms, ", "))
		if s.notifyEnabled {
			s.notifyWG.Add(1)
			go func() {
				defer s.notifyWG.Done()
				s.notifyAdmin(msg, match)
			}()
		}
	}

	inDomain := IsInDomain(text)
	log.Printf("[chat %d] classified in-domain=%v", msg.ChatID, inDomain)

	var completion string
	var completionErr error
	if inDomain {
		ctx, cancel := context.WithTimeout(context.Background(), s.aiTimeout)
		completion, completionErr = s.ai.Complete(ctx, text)
		cancel()
		if completionErr != nil {
			log.Printf("[chat %d] completion failed: %v", msg.ChatID, completionErr)
		}
	}

	reply := AssembleReply(inDomain, completion, completionErr)
	if err := s.messenger.Send(entities.OutgoingMessage{ChatID: msg.ChatID, Text: reply}); err != nil {
		log.Printf("[chat %d] reply send failed: %v", msg.ChatID, err)
		return err
	}
	return nil
}

// Wait blocks until pending admin notifications have been delivered or
// failed. Called at shutdown; tests use it to observe the side channel.
func (s *MessageService) Wait() {
	s.notifyWG.Wait()
}

// notifyAdmin sends the side-channel alert. Failures are logged only;
// the reply path never sees them.
func (s *MessageService) notifyAdmin(msg entities.IncomingMessage, match entities.KeywordMatch) {
	text := fmt.Sprintf(
		"Mot clé sensible détecté: '%s' dans le message de %s (%d).\n\nMessage: %s",
		strings.Join(match.Terms, ", "),
		msg.Sender.FirstName,
		msg.Sender.UserID,
		truncate(msg.Text, notifyExcerptLen),
	)
	if err := s.messenger.Send(entities.OutgoingMessage{ChatID: s.adminChatID, Text: text}); err != nil {
		log.Printf("[chat %d] admin notification failed: %v", msg.ChatID, err)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
