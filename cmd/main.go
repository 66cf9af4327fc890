package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"immo-assistant/internal/entities"
	"immo-assistant/internal/infrastructure"
	"immo-assistant/internal/interfaces/http"
	"immo-assistant/internal/usecases"
)

func main() {
	cfg, err := infrastructure.LoadConfig()
	if err != nil {
		log.Printf("startup failed: %v", err)
		os.Exit(1)
	}
	if !cfg.NotificationsEnabled {
		log.Println("ADMIN_CHAT_ID not set, admin notifications disabled")
	}

	telegramClient, err := infrastructure.NewTelegramClient(cfg.TelegramToken)
	if err != nil {
		log.Printf("startup failed: %v", err)
		os.Exit(1)
	}
	openaiClient := infrastructure.NewOpenAIClient(cfg)

	messageService := usecases.NewMessageService(openaiClient, telegramClient, cfg)
	dispatcher := infrastructure.NewChatDispatcher()

	// Liveness endpoint beside the polling loop. A server failure goes
	// through the same graceful shutdown as SIGINT/SIGTERM.
	serverFailed := make(chan error, 1)
	r := gin.Default()
	http.SetupRoutes(r, http.NewHandler(telegramClient.Username()))
	http.RunBackground(r, cfg.HTTPAddr, func(err error) {
		serverFailed <- err
	})

	bot := telegramClient.Bot
	log.Printf("bot @%s connected, polling for updates", telegramClient.Username())

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := bot.GetUpdatesChan(u)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case s := <-sig:
			log.Printf("received %s, stopping update polling", s)
		case err := <-serverFailed:
			log.Printf("HTTP server stopped: %v, shutting down", err)
		}
		bot.StopReceivingUpdates()
	}()

	for update := range updates {
		if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
			continue
		}
		chatID := update.Message.Chat.ID

		if update.Message.IsCommand() {
			var reply string
			switch update.Message.Command() {
			case "start":
				reply = usecases.WelcomeMessage
			case "help":
				reply = usecases.HelpMessage
			default:
				continue
			}
			dispatcher.Dispatch(chatID, func() {
				if err := telegramClient.Send(entities.OutgoingMessage{ChatID: chatID, Text: reply}); err != nil {
					log.Printf("[chat %d] command reply failed: %v", chatID, err)
				}
			})
			continue
		}

		msg := entities.IncomingMessage{
			ChatID: chatID,
			Text:   update.Message.Text,
		}
		// From is nil for channel posts; keep the zero sender there.
		if from := update.Message.From; from != nil {
			msg.Sender = entities.Sender{
				UserID:    from.ID,
				FirstName: from.FirstName,
				Username:  from.UserName,
			}
		}
		dispatcher.Dispatch(chatID, func() {
			// Send failures are already logged inside the service.
			_ = messageService.ProcessMessage(msg)
		})
	}

	// Update channel closed: let in-flight replies and notifications
	// finish before exiting.
	dispatcher.Wait()
	dispatcher.Close()
	messageService.Wait()
	log.Println("bot stopped")
}
