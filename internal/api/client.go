// ABOUTME: HTTP client for the CHAI-NET intelligence backend
// ABOUTME: Resolves bearer token and demo headers fresh on every request

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"sync"
)

// ErrNoData is returned by typed endpoints when the backend reports that
// no underlying data exists yet (an empty sensor collection, an unloaded
// market sheet). Callers usually fall back to a local approximation.
var ErrNoData = errors.New("no data available")

// RequestError is a non-2xx backend response, distinguishable by status
// code. Transport-level failures are not RequestErrors; they propagate
// as-is with no status attached.
type RequestError struct {
	Status     int
	StatusText string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backend returned %d %s", e.Status, e.StatusText)
}

// TokenGetter supplies a fresh bearer token per request. An empty token
// means "send the request unauthenticated".
type TokenGetter func(ctx context.Context) (string, error)

// HeaderInjector supplies extra headers merged into every request.
type HeaderInjector func() map[string]string

// Client is the single egress point for all backend calls. Every request
// re-resolves its auth context: the token getter is consulted fresh each
// time because bearer tokens are short-lived, and caching one across
// requests would risk sending expired credentials.
//
// The client performs no retries and no backoff; each call is
// at-most-once from its own perspective.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger

	mu       sync.RWMutex
	getToken TokenGetter
	injector HeaderInjector
}

// New creates a client for the backend at baseURL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		logger:     slog.Default().With("component", "api"),
	}
}

// SetTokenGetter registers the bearer-token supplier. Pass nil to send
// all requests unauthenticated.
func (c *Client) SetTokenGetter(getter TokenGetter) {
	c.mu.Lock()
	c.getToken = getter
	c.mu.Unlock()
}

// SetHeaderInjector registers a supplier of extra request headers (used
// to forward X-Force-Demo when demo mode is active).
func (c *Client) SetHeaderInjector(injector HeaderInjector) {
	c.mu.Lock()
	c.injector = injector
	c.mu.Unlock()
}

// applyHeaders resolves the auth context for one outgoing request.
// A missing or failed token is not an error: the request proceeds
// unauthenticated and the backend decides whether that is acceptable.
func (c *Client) applyHeaders(ctx context.Context, req *http.Request) {
	c.mu.RLock()
	getToken := c.getToken
	injector := c.injector
	c.mu.RUnlock()

	if getToken != nil {
		token, err := getToken(ctx)
		switch {
		case err != nil:
			c.logger.Warn("token getter failed, sending unauthenticated", "error", err)
		case token == "":
			c.logger.Warn("no auth token available")
		default:
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	if injector != nil {
		for k, v := range injector() {
			req.Header.Set(k, v)
		}
	}
}

// do sends the request and decodes a JSON response into out (skipped when
// out is nil). Non-2xx responses become *RequestError.
func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("backend request failed",
			"path", req.URL.Path,
			"status", resp.StatusCode)
		return &RequestError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", req.URL.Path, err)
	}
	return nil
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	c.applyHeaders(ctx, req)
	return c.do(req, out)
}

// PostJSON issues a POST with a JSON body (omitted when body is nil) and
// decodes the JSON response into out.
func (c *Client) PostJSON(ctx context.Context, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.applyHeaders(ctx, req)
	return c.do(req, out)
}

// PostFile issues a multipart/form-data POST with a single file field.
// The content type comes from the multipart writer so it carries the
// writer's own boundary; setting it manually is a correctness bug.
func (c *Client) PostFile(ctx context.Context, path, field, filename string, file io.Reader, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("building multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("reading upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.applyHeaders(ctx, req)
	return c.do(req, out)
}

// postRaw issues a JSON POST and returns the raw response body. Used for
// endpoints that return files rather than JSON.
func (c *Client) postRaw(ctx context.Context, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.applyHeaders(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
	}

	return io.ReadAll(resp.Body)
}
