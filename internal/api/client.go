// Package api is the sole I/O boundary to the upstream dashboard service.
// Every request in the program is constructed here.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Actions exposed by the upstream service.
const (
	actionGetAssignments = "getAssignments"
	actionGetCategories  = "getCategories"
	actionUpdateStatus   = "updateStatus"
	actionSync           = "sync"
)

// genericFailure is the fallback message when the upstream rejects a call
// without supplying an error string.
const genericFailure = "API request failed"

// Envelope is the wrapper every upstream response follows.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// CallError reports an upstream-declined call, carrying the server's
// message or the generic fallback.
type CallError struct {
	Action  string
	Message string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %s", e.Action, e.Message)
}

// Client is a thin HTTP client for the upstream envelope-RPC surface.
// Requests are GETs parameterized entirely through the query string:
// the fixed access key, an action name, and free-form extra parameters.
// Each call is a single attempt; there is no retry or backoff.
type Client struct {
	baseURL    string
	key        string
	httpClient *http.Client
}

// NewClient creates a new gateway client for the given endpoint and
// access key.
func NewClient(baseURL, key string) *Client {
	return &Client{
		baseURL: baseURL,
		key:     key,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// call issues one GET for the given action, unwraps the response
// envelope, and returns the raw data payload.
func (c *Client) call(
	ctx context.Context,
	action string,
	params map[string]string,
) (json.RawMessage, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL %q: %w", c.baseURL, err)
	}

	q := u.Query()
	q.Set("key", c.key)
	q.Set("action", action)
	for k, v := range params {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, u.String(), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", action, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing %s: %w", action, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response: %w", action, err)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decoding %s response: %w", action, err)
	}

	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = genericFailure
		}
		return nil, &CallError{Action: action, Message: msg}
	}

	return env.Data, nil
}
