// Package api implements the typed HTTP client for the cronclaw service.
// Every command performs its local validation first and then exactly one
// call through this client; errors are terminal, there are no retries.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aatumaykin/cronclaw/internal/config"
	"github.com/aatumaykin/cronclaw/internal/constants"
	"github.com/aatumaykin/cronclaw/internal/logger"
	"github.com/aatumaykin/cronclaw/internal/version"
)

// APIError is a non-2xx response. The message comes from the server
// verbatim so users see exactly what the service said.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// Response envelopes used by the server contract.
type dataResponse struct {
	Data json.RawMessage `json:"data"`
}

type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client is the cronclaw API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

// New creates a client from stored credentials.
func New(creds *config.Credentials, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Discard()
	}
	return &Client{
		baseURL: creds.APIURL,
		apiKey:  creds.APIKey,
		httpClient: &http.Client{
			Timeout: constants.HTTPTimeout,
		},
		log: log,
	}
}

// do performs one API request. The body (when non-nil) is encoded as JSON;
// a 2xx response decodes the data envelope into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("User-Agent", version.UserAgent())

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("request failed", err,
			logger.Field{Key: "method", Value: method},
			logger.Field{Key: "path", Value: path},
			logger.Field{Key: "request_id", Value: requestID},
		)
		return fmt.Errorf("request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	c.log.Debug("api request",
		logger.Field{Key: "method", Value: method},
		logger.Field{Key: "path", Value: path},
		logger.Field{Key: "status", Value: resp.StatusCode},
		logger.Field{Key: "duration", Value: time.Since(start).String()},
		logger.Field{Key: "request_id", Value: requestID},
	)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}

	var envelope dataResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data from %s: %w", path, err)
	}

	return nil
}

// decodeError surfaces the server error message verbatim, falling back to
// the HTTP status text when the body is not the documented envelope.
func decodeError(statusCode int, body []byte) error {
	var envelope errorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return &APIError{
			StatusCode: statusCode,
			Code:       envelope.Error.Code,
			Message:    envelope.Error.Message,
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("server returned %d %s", statusCode, http.StatusText(statusCode)),
	}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
