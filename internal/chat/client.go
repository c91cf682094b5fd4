// internal/chat/client.go
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"particle-backdrop/internal/config"
)

type request struct {
	UserInput string `json:"user_input"`
}

type response struct {
	Reply string `json:"reply"`
}

// Client talks to the companion backend.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

func NewClient(endpoint string) *Client {
	if endpoint == "" {
		endpoint = config.ChatEndpoint
	}
	return &Client{
		Endpoint: endpoint,
		HTTP:     &http.Client{Timeout: config.ChatTimeout},
	}
}

// Send posts the user's text and returns the companion's reply.
func (c *Client) Send(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(request{UserInput: text})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("post %s: %w", c.Endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("post %s: status %d: %s", c.Endpoint, resp.StatusCode, bytes.TrimSpace(snippet))
	}
	var out response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode reply: %w", err)
	}
	return out.Reply, nil
}
