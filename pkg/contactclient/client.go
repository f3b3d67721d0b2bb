// Package contactclient talks to the portfolio contact endpoint.
package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const contactPath = "/api/contact"

// Request is the body accepted by POST /api/contact.
type Request struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// Error is a non-2xx answer from the gateway.
type Error struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
	// RetryAfter is set on 429 responses.
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("contact: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("contact: unexpected status %d", e.StatusCode)
}

// FieldErrors returns the per-field messages of a 400 answer.
func (e *Error) FieldErrors() map[string][]string {
	return e.Fields
}

// UserMessage returns the gateway's visitor-facing text.
func (e *Error) UserMessage() string {
	return e.Message
}

// Client posts contact submissions.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the default client (10s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PostContact sends one submission. A gateway rejection is returned as
// *Error; transport failures are returned wrapped.
func (c *Client) PostContact(ctx context.Context, req Request) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("contact: encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+contactPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("contact: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("contact: post: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("contact: read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if decodeErr == nil && !env.Success {
			return &Error{StatusCode: resp.StatusCode, Message: env.Message, Fields: env.Errors}
		}
		return nil
	}

	apiErr := &Error{StatusCode: resp.StatusCode}
	if decodeErr == nil {
		apiErr.Message = env.Message
		apiErr.Fields = env.Errors
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		if secs, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
			apiErr.RetryAfter = time.Duration(secs) * time.Second
		}
	}
	return apiErr
}
