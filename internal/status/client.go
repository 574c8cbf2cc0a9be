package status

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"raisingsims/internal/pet"
)

// DefaultTimeout bounds a status request when the caller gives no timeout
const DefaultTimeout = 5 * time.Second

// Client reads snapshots from a running session's status server
type Client struct {
	HTTP    *http.Client
	BaseURL string
}

// NewClient returns a client for the status server at baseURL
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP:    &http.Client{Timeout: timeout},
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Fetch returns the latest published snapshot
func (c *Client) Fetch(ctx context.Context) (pet.Snapshot, error) {
	var snap pet.Snapshot

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/pet", nil)
	if err != nil {
		return snap, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return snap, fmt.Errorf("fetching pet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return snap, fmt.Errorf("fetching pet: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return snap, fmt.Errorf("decoding pet: %w", err)
	}
	return snap, nil
}
