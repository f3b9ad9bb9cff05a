package managementapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apimkit/apimctl/internal/id"
	"github.com/apimkit/apimctl/pkg/apim"
	"github.com/apimkit/apimctl/pkg/logging"
	"github.com/apimkit/apimctl/pkg/selection"
)

const (
	// RequestIDHeader carries the per-request correlation id.
	RequestIDHeader = "X-Request-ID"

	// DefaultTimeout is the HTTP timeout used when none is configured.
	DefaultTimeout = 30 * time.Second
)

// Client talks to the Management API over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	userAgent  string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP timeout for the client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger sets the logger used to trace requests at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a Management API client.
// baseURL is the Management API root, e.g. "http://localhost:8083/management".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger: logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login authenticates with basic credentials and keeps the returned token
// for every following call.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/user/login", nil, func(req *http.Request) {
		req.SetBasicAuth(username, password)
	})
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp) {
		return "", c.parseError(resp)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to parse login response: %w", err)
	}
	if result.Token == "" {
		return "", &APIError{
			StatusCode: resp.StatusCode,
			ErrorCode:  "missing_token",
			Message:    "login response did not contain a token",
		}
	}

	c.token = result.Token
	return c.token, nil
}

// ListSummaries returns every API visible to the session.
func (c *Client) ListSummaries(ctx context.Context) ([]apim.Summary, error) {
	resp, err := c.get(ctx, "/apis")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp) {
		return nil, c.parseError(resp)
	}

	var summaries []apim.Summary
	if err := json.NewDecoder(resp.Body).Decode(&summaries); err != nil {
		return nil, fmt.Errorf("failed to parse API list: %w", err)
	}
	return summaries, nil
}

// Export returns the full definition of one API.
func (c *Client) Export(ctx context.Context, apiID string) (*apim.API, error) {
	resp, err := c.get(ctx, "/apis/"+url.PathEscape(apiID)+"/export")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp) {
		return nil, c.parseError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read definition of API %s: %w", apiID, err)
	}
	api, err := apim.ParseDefinition(apiID, body)
	if err != nil {
		return nil, fmt.Errorf("API %s: %w", apiID, err)
	}
	return api, nil
}

// ListAPIs returns the full definitions of the APIs whose summary passes the
// API level patterns of f. Definitions of skipped APIs are never exported.
func (c *Client) ListAPIs(ctx context.Context, f *selection.Filter) ([]*apim.API, error) {
	summaries, err := c.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}

	var apis []*apim.API
	for _, s := range summaries {
		if !f.MatchSummary(s) {
			continue
		}
		api, err := c.Export(ctx, s.ID)
		if err != nil {
			return nil, err
		}
		if api.ContextPath == "" {
			api.ContextPath = s.ContextPath
		}
		apis = append(apis, api)
	}
	return apis, nil
}

// Import sends api's definition as the new definition of targetID without
// deploying it.
func (c *Client) Import(ctx context.Context, api *apim.API, targetID string) (*apim.ImportedAPI, error) {
	body, err := api.Definition()
	if err != nil {
		return nil, fmt.Errorf("failed to encode definition of API %s: %w", api.ID, err)
	}

	resp, err := c.post(ctx, "/apis/"+url.PathEscape(targetID)+"/import", body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp) {
		return nil, c.parseError(resp)
	}

	var result apim.ImportedAPI
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse import response: %w", err)
	}
	if result.ID == "" {
		result.ID = targetID
	}
	return &result, nil
}

// Deploy activates the current definition of an API on the gateways.
func (c *Client) Deploy(ctx context.Context, apiID string) error {
	resp, err := c.post(ctx, "/apis/"+url.PathEscape(apiID)+"/deploy", nil)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp) {
		return c.parseError(resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Quality returns the quality score of an API.
func (c *Client) Quality(ctx context.Context, apiID string) (*apim.Quality, error) {
	resp, err := c.get(ctx, "/apis/"+url.PathEscape(apiID)+"/quality")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if !isSuccess(resp) {
		return nil, c.parseError(resp)
	}

	var q apim.Quality
	if err := json.NewDecoder(resp.Body).Decode(&q); err != nil {
		return nil, fmt.Errorf("failed to parse quality of API %s: %w", apiID, err)
	}
	return &q, nil
}

// get performs an HTTP GET request.
func (c *Client) get(ctx context.Context, path string) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodGet, path, nil, nil)
}

// post performs an HTTP POST request.
func (c *Client) post(ctx context.Context, path string, body []byte) (*http.Response, error) {
	return c.doRequest(ctx, http.MethodPost, path, body, nil)
}

// doRequest performs an HTTP request. edit, when set, runs after the
// default headers are applied.
func (c *Client) doRequest(ctx context.Context, method, path string, body []byte, edit func(*http.Request)) (*http.Response, error) {
	fullURL := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := id.UUID()
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if edit != nil {
		edit(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("management api request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return nil, &APIError{
			StatusCode: 0,
			ErrorCode:  "connection_error",
			Message:    fmt.Sprintf("cannot connect to management API at %s: %v", c.baseURL, err),
			RequestID:  requestID,
			cause:      err,
		}
	}

	c.logger.Debug("management api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start))
	return resp, nil
}

func isSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
