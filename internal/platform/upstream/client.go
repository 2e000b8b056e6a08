package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"quiz_admin_console/internal/common"
	"quiz_admin_console/internal/platform/metrics"
)

// APIError is a non-2xx answer from the admin API, carrying the HTTP status
// and the server-provided message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("admin API returned %d: %s", e.Status, e.Message)
}

// IsAuthFailure reports whether err is an upstream 401, which forces session
// termination in the caller.
func IsAuthFailure(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized
}

// Client dispatches every console request to the admin API. One instance is
// shared by all page controllers; it holds no per-session state, the bearer
// token travels as an argument.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) Get(ctx context.Context, token, path string, out interface{}) error {
	return c.do(ctx, token, http.MethodGet, path, nil, out)
}

func (c *Client) Post(ctx context.Context, token, path string, body, out interface{}) error {
	return c.do(ctx, token, http.MethodPost, path, body, out)
}

func (c *Client) Put(ctx context.Context, token, path string, body, out interface{}) error {
	return c.do(ctx, token, http.MethodPut, path, body, out)
}

func (c *Client) Delete(ctx context.Context, token, path string) error {
	return c.do(ctx, token, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, token, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.setCommonHeaders(req, token)

	resp, err := c.roundTrip(req, method)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode admin API response: %w", err)
	}
	return nil
}

// GetRaw streams a response body without JSON decoding; the transactions
// CSV export uses it. The caller owns the returned body.
func (c *Client) GetRaw(ctx context.Context, token, path string) (io.ReadCloser, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	c.setCommonHeaders(req, token)

	resp, err := c.roundTrip(req, http.MethodGet)
	if err != nil {
		return nil, "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, "", c.errorFromResponse(resp)
	}
	return resp.Body, resp.Header.Get("Content-Type"), nil
}

// PostMultipart forwards an already-encoded multipart body, used by the
// question bulk upload passthrough.
func (c *Client) PostMultipart(ctx context.Context, token, path, contentType string, body io.Reader, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", contentType)
	c.setCommonHeaders(req, token)

	resp, err := c.roundTrip(req, http.MethodPost)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode admin API response: %w", err)
	}
	return nil
}

func (c *Client) setCommonHeaders(req *http.Request, token string) {
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func (c *Client) roundTrip(req *http.Request, method string) (*http.Response, error) {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.ObserveUpstream(method, 0, time.Since(start))
		slog.Error("upstream request failed", "method", method, "path", req.URL.Path, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrUpstream, err)
	}
	metrics.ObserveUpstream(method, resp.StatusCode, time.Since(start))
	return resp, nil
}

func (c *Client) errorFromResponse(resp *http.Response) error {
	// The admin API reports business errors as {"message": ...} or {"error": ...}.
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<16)).Decode(&body); err == nil {
		if body.Message != "" {
			msg = body.Message
		} else if body.Error != "" {
			msg = body.Error
		}
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}
