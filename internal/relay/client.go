package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrStatus wraps every non-2xx relay response.
var ErrStatus = errors.New("relay returned non-success status")

// Client calls POST /api/chat on a relay server.
type Client struct {
	endpoint string
	http     *http.Client
}

// New builds a client for the relay at baseURL. A zero timeout waits for the
// relay indefinitely.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(baseURL, "/") + "/api/chat",
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
	Error    string `json:"error"`
	Details  string `json:"details"`
}

// Send posts message and returns the reply text, which may be empty.
func (c *Client) Send(ctx context.Context, message string) (string, error) {
	body, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	var out chatResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if out.Error != "" {
			return "", fmt.Errorf("%w: %d %s", ErrStatus, resp.StatusCode, out.Error)
		}
		return "", fmt.Errorf("%w: %d", ErrStatus, resp.StatusCode)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("failed to decode relay response: %w", decodeErr)
	}

	return out.Response, nil
}
