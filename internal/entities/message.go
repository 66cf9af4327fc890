package entities

// Sender identifies the Telegram user behind an incoming message.
type Sender struct {
	UserID    int64
	FirstName string
	Username  string
}

// IncomingMessage is a validated inbound text message. Updates without
// text are dropped at the adapter and never reach the pipeline.
type IncomingMessage struct {
	ChatID int64
	Text   string
	Sender Sender
}

// OutgoingMessage is a reply or admin notification ready to be sent.
type OutgoingMessage struct {
	ChatID int64
	Text   string
}

// KeywordMatch holds the sensitive terms found in a message, in keyword
// list order, deduplicated.
type KeywordMatch struct {
	Terms []string
}

func (k KeywordMatch) Empty() bool {
	return len(k.Terms) == 0
}
