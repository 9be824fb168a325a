package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/inkwell/publishing-api/internal/core/domain"
	"github.com/inkwell/publishing-api/internal/core/ports"
)

type stubChatClient struct {
	answer string
	err    error
	asked  []string
}

func (c *stubChatClient) Ask(_ context.Context, text string) (string, error) {
	c.asked = append(c.asked, text)
	if c.err != nil {
		return "", c.err
	}
	return c.answer, nil
}

type stubChatHistory struct {
	mu        sync.Mutex
	exchanges []*ports.ChatExchange
	insertErr error
}

func (h *stubChatHistory) Insert(_ context.Context, exchange *ports.ChatExchange) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.insertErr != nil {
		return h.insertErr
	}
	clone := *exchange
	h.exchanges = append(h.exchanges, &clone)
	return nil
}

func (h *stubChatHistory) ListAll(_ context.Context) ([]*ports.ChatExchange, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]*ports.ChatExchange, 0, len(h.exchanges))
	for _, e := range h.exchanges {
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func TestChatService_Ask_StoresExchange(t *testing.T) {
	client := &stubChatClient{answer: "42"}
	history := &stubChatHistory{}
	svc := NewChatService(client, history, discardLogger)

	answer, err := svc.Ask(context.Background(), "meaning of life?")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if answer != "42" {
		t.Fatalf("answer: want 42, got %q", answer)
	}

	stored, err := svc.History(context.Background())
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 exchange, got %d", len(stored))
	}
	if stored[0].Question != "meaning of life?" || stored[0].Answer != "42" {
		t.Fatalf("unexpected exchange: %+v", stored[0])
	}
	if stored[0].AskedAt.IsZero() {
		t.Fatal("asked_at must be set")
	}
}

func TestChatService_Ask_EmptyText(t *testing.T) {
	svc := NewChatService(&stubChatClient{}, &stubChatHistory{}, discardLogger)

	if _, err := svc.Ask(context.Background(), ""); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestChatService_Ask_DownstreamFailure(t *testing.T) {
	client := &stubChatClient{err: errors.New("connection refused")}
	history := &stubChatHistory{}
	svc := NewChatService(client, history, discardLogger)

	_, err := svc.Ask(context.Background(), "hello")
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if len(history.exchanges) != 0 {
		t.Fatal("failed exchanges must not be stored")
	}
}

func TestChatService_Ask_HistoryInsertBestEffort(t *testing.T) {
	client := &stubChatClient{answer: "ok"}
	history := &stubChatHistory{insertErr: errors.New("disk full")}
	svc := NewChatService(client, history, discardLogger)

	answer, err := svc.Ask(context.Background(), "hello")
	if err != nil {
		t.Fatalf("insert failure must not fail the request: %v", err)
	}
	if answer != "ok" {
		t.Fatalf("answer: want ok, got %q", answer)
	}
}
