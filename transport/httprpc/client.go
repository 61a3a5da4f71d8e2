package httprpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client implements gossip.RPCClient over net/http.
type Client struct {
	hc *http.Client
}

// NewClient returns a Client with the given per-call timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{hc: &http.Client{Timeout: timeout}}
}

// Post sends body as JSON to path on peer and returns the decoded JSON
// response.
func (c *Client) Post(ctx context.Context, peer, path string, body any) (map[string]any, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, peer+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s%s: %w", peer, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("post %s%s: status %d", peer, path, resp.StatusCode)
	}

	var out map[string]any
	if resp.ContentLength == 0 {
		return out, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil && err.Error() != "EOF" {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// Get issues a GET to path on peer and returns the decoded JSON response.
func (c *Client) Get(ctx context.Context, peer, path string) (any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, peer+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s%s: %w", peer, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("get %s%s: status %d", peer, path, resp.StatusCode)
	}

	var out any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}
