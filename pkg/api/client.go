package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultTimeout bounds each round trip; there is no retry policy, so a
// failed or timed-out request surfaces directly to the caller.
const defaultTimeout = 10 * time.Second

// Client is a typed client for the CareCompanion REST API. All calls are
// fresh round trips: no retries, no caching, no request deduplication.
// Cancellation is per-request via the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
	logger  *zap.Logger
}

// New creates a Client rooted at baseURL (e.g. "https://api.example.com/api/v1").
// The session supplies the bearer credential for authenticated calls and is
// updated by the auth bindings on successful login or registration.
func New(baseURL string, session *Session, logger *zap.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if session == nil {
		return nil, fmt.Errorf("session is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    newHTTPClient(defaultTimeout),
		session: session,
		logger:  logger,
	}, nil
}

// SetTimeout overrides the per-request timeout. Zero restores the default.
func (c *Client) SetTimeout(timeout time.Duration) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	c.http.Timeout = timeout
}

// Session returns the session this client authenticates with
func (c *Client) Session() *Session {
	return c.session
}

// newHTTPClient builds an HTTP client tuned for outbound API calls
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// do issues one request. A non-nil body is serialized as JSON. When the
// session holds a credential it is attached as a bearer token. On 2xx the
// response is decoded into out (when out is non-nil); 204 and empty bodies
// decode to nothing. On non-2xx the error envelope is flattened into *Error
// and no partial data is returned.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// doForm issues a request with a form-urlencoded body. Only the login
// binding uses this; the backend's OAuth2 password flow requires form
// encoding while every other write is JSON.
func (c *Client) doForm(ctx context.Context, method, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	requestID := uuid.New().String()
	req.Header.Set("X-Request-ID", requestID)
	req.Header.Set("Accept", "application/json")

	// Snapshot the credential at send time. A logout racing with this
	// request does not retract the token already attached.
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	startTime := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	duration := time.Since(startTime)
	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("request_id", requestID),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration),
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("failed to read response body", fields...)
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseError(resp.StatusCode, respBody)
		if resp.StatusCode >= 500 {
			c.logger.Error("request completed with server error", fields...)
		} else {
			c.logger.Warn("request completed with client error", fields...)
		}
		return apiErr
	}

	c.logger.Info("request completed", fields...)

	if out == nil || resp.StatusCode == http.StatusNoContent || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
