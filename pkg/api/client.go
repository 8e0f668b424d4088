// Package api is the JSON client for the NOUS backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error carries the normalized failure shape for any non-success response:
// a human readable message, the HTTP status, and the parsed payload so
// callers can inspect whatever the server actually sent.
type Error struct {
	Message string
	Status  int
	Payload interface{}
}

func (e *Error) Error() string {
	return e.Message
}

// Client talks to the NOUS backend. No retries, no client-imposed timeout,
// no caching; cancellation comes from the caller's context.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New creates a client for the given base URL.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: http.DefaultClient,
	}
}

// RequestJSON performs one JSON request and normalizes the outcome.
//
// The response body is read as text first and then parsed as JSON; a body
// that is not JSON is not an error by itself, on a successful response the
// raw text becomes the payload. An empty body yields a nil payload. A
// non-2xx status yields a *Error whose message is the payload's "error"
// string when present.
func (c *Client) RequestJSON(ctx context.Context, method, path string, body interface{}) (interface{}, []byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response: %w", err)
	}

	var payload interface{}
	if len(text) > 0 {
		if err := json.Unmarshal(text, &payload); err != nil {
			payload = string(text)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := fmt.Sprintf("request failed (%d)", resp.StatusCode)
		if m, ok := payload.(map[string]interface{}); ok {
			if s, ok := m["error"].(string); ok {
				message = s
			}
		}
		return nil, nil, &Error{Message: message, Status: resp.StatusCode, Payload: payload}
	}

	return payload, text, nil
}
