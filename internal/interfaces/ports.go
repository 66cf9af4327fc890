package interfaces

import (
	"context"

	"immo-assistant/internal/entities"
)

type AIClient interface {
	Complete(ctx context.Context, question string) (string, error)
}

type Messenger interface {
	Send(msg entities.OutgoingMessage) error
}
