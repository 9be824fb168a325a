// Package chat implements the client for the external answering service.
// The service is consumed as POST /ask {"text": ...} -> {"answer": ...} and
// stays entirely outside the authorization model.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/inkwell/publishing-api/internal/api/metrics"
)

const defaultRequestTimeout = 15 * time.Second

// Client talks to the answering service over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the service at baseURL. A default timeout
// is applied when none is provided.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type askRequest struct {
	Text string `json:"text"`
}

type askResponse struct {
	Answer string `json:"answer"`
}

// Ask submits a question and returns the service's answer.
func (c *Client) Ask(ctx context.Context, text string) (string, error) {
	start := time.Now()
	answer, err := c.ask(ctx, text)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	metrics.ChatRequestDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	return answer, err
}

func (c *Client) ask(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(askRequest{Text: text})
	if err != nil {
		return "", fmt.Errorf("chat request marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/ask", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat service returned status %d", resp.StatusCode)
	}

	var out askResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("chat response decode: %w", err)
	}
	return out.Answer, nil
}
