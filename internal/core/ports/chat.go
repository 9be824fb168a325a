package ports

import (
	"context"
	"time"
)

// ChatExchange is one stored question/answer pair.
type ChatExchange struct {
	Question string    `json:"user"`
	Answer   string    `json:"ai"`
	AskedAt  time.Time `json:"asked_at"`
}

// ChatClient talks to the external answering service. The service is opaque:
// a question goes in, an answer comes out.
type ChatClient interface {
	Ask(ctx context.Context, text string) (string, error)
}

// ChatHistoryRepository persists chat exchanges.
type ChatHistoryRepository interface {
	Insert(ctx context.Context, exchange *ChatExchange) error
	ListAll(ctx context.Context) ([]*ChatExchange, error)
}
