package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"quizgen/internal/quiz"
)

// DefaultBaseURL is used when no API URL is configured.
const DefaultBaseURL = "http://localhost:4000"

// generatePath is the question generation endpoint relative to the base URL.
const generatePath = "/api/generate"

// maxErrorBody bounds how much of a failed response is kept for logs.
const maxErrorBody = 4 << 10

// ErrMalformedResponse indicates a 2xx response without a usable question list.
var ErrMalformedResponse = errors.New("malformed generate response")

// StatusError reports a non-2xx response from the generator.
type StatusError struct {
	StatusCode int
	Body       string
}

// Error returns a readable message including the response body.
func (err *StatusError) Error() string {
	if err.Body == "" {
		return fmt.Sprintf("generator returned status %d", err.StatusCode)
	}
	return fmt.Sprintf("generator returned status %d: %s", err.StatusCode, err.Body)
}

// HTTPDoer abstracts HTTP clients used by the generator client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the remote question generation service.
type Client struct {
	BaseURL string
	HTTP    HTTPDoer
	Timeout time.Duration
}

type generateRequest struct {
	Topic string `json:"topic"`
}

type generateResponse struct {
	Questions *[]quiz.Question `json:"questions"`
}

// NewClient builds a client for baseURL. A zero timeout leaves the transport default.
func NewClient(baseURL string, client HTTPDoer, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		HTTP:    client,
		Timeout: timeout,
	}
}

// Endpoint returns the full generate URL.
func (c *Client) Endpoint() string {
	return c.BaseURL + generatePath
}

// Generate requests questions for topic.
func (c *Client) Generate(ctx context.Context, topic string) ([]quiz.Question, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}
	payload, err := json.Marshal(generateRequest{Topic: topic})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", c.Endpoint(), err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if decoded.Questions == nil {
		return nil, fmt.Errorf("%w: missing questions field", ErrMalformedResponse)
	}
	return *decoded.Questions, nil
}
