package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/inkwell/publishing-api/internal/core/domain"
	"github.com/inkwell/publishing-api/internal/core/ports"
)

// ChatService proxies questions to the external answering service and keeps
// a history of exchanges. The answering service sits outside the
// authorization model: anonymous callers are allowed.
type ChatService struct {
	client  ports.ChatClient
	history ports.ChatHistoryRepository
	logger  zerolog.Logger
}

func NewChatService(client ports.ChatClient, history ports.ChatHistoryRepository, logger zerolog.Logger) *ChatService {
	return &ChatService{client: client, history: history, logger: logger}
}

// Ask forwards the question downstream and stores the exchange. History
// persistence is best-effort; a failed insert never fails the request.
func (s *ChatService) Ask(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("%w: text is required", domain.ErrValidation)
	}

	answer, err := s.client.Ask(ctx, text)
	if err != nil {
		s.logger.Error().Err(err).Msg("chat service request failed")
		return "", fmt.Errorf("%w: chat service: %v", domain.ErrUnavailable, err)
	}

	exchange := &ports.ChatExchange{
		Question: text,
		Answer:   answer,
		AskedAt:  time.Now().UTC(),
	}
	if err := s.history.Insert(ctx, exchange); err != nil {
		s.logger.Warn().Err(err).Msg("failed to store chat exchange")
	}

	return answer, nil
}

// History returns all stored exchanges, oldest first.
func (s *ChatService) History(ctx context.Context) ([]*ports.ChatExchange, error) {
	return s.history.ListAll(ctx)
}
