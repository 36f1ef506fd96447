package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"cinemaseat-cli/logger"
)

const defaultBaseURL = "http://127.0.0.1:8000"

// TokenStore holds the bearer credentials the client authenticates
// with. Getters return "" when nothing is stored.
type TokenStore interface {
	Access() string
	Refresh() string
	SetPair(access string, refresh string) error
	SetAccess(access string) error
	Clear() error
}

// Client wraps HTTP access to the CinemaSeat booking API. Requests
// carry the stored access token; a 401 triggers a single token
// refresh followed by a single resend, written as straight-line code
// so the at-most-one-retry rule can't regress into a loop.
type Client struct {
	httpClient *http.Client
	baseURL    string
	tokens     TokenStore
}

// APIError is returned when the API responds with a non-2xx status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "cinemaseat api error"
	}
	if e.Body != "" {
		return fmt.Sprintf("cinemaseat api error: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("cinemaseat api error: %s", e.Status)
}

// Detail returns the response body, or a synthesized "HTTP <status>"
// line when the body was empty.
func (e *APIError) Detail() string {
	if e == nil {
		return ""
	}
	if e.Body != "" {
		return e.Body
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// IsConflict reports whether the error is a 409 from the API, i.e. a
// lost seat race rather than a hard failure.
func IsConflict(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusConflict
	}
	return false
}

// IsUnauthorized reports whether the error represents a 401 from the API.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusUnauthorized
	}
	return false
}

// NewClient creates an API client. If httpClient is nil, a default
// client is used. The base endpoint comes from CINEMASEAT_URL when set.
func NewClient(httpClient *http.Client, tokens TokenStore) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 12 * time.Second}
	}
	base := strings.TrimRight(strings.TrimSpace(os.Getenv("CINEMASEAT_URL")), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    base,
		tokens:     tokens,
	}
}

// BaseURL returns the configured API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues an authenticated request and decodes the JSON response
// into out (out may be nil). On 401 with a refresh token on hand it
// refreshes once and resends once; a failed refresh surfaces the
// original 401 unmodified.
func (c *Client) do(ctx context.Context, method string, path string, payload any, out any) error {
	res, err := c.send(ctx, method, path, payload, c.tokens.Access())
	if err != nil {
		return err
	}

	if res.StatusCode == http.StatusUnauthorized && c.tokens.Refresh() != "" {
		access, ok := c.refreshAccess(ctx)
		if !ok {
			return readResponse(res, path, out)
		}
		drain(res)
		res, err = c.send(ctx, method, path, payload, access)
		if err != nil {
			return err
		}
	}

	return readResponse(res, path, out)
}

func (c *Client) send(ctx context.Context, method string, path string, payload any, access string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	logger.Log.Debug("api request", "method", method, "path", path, "request_id", requestID)

	res, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.Debug("api transport failure", "path", path, "request_id", requestID, "err", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	logger.Log.Debug("api response", "path", path, "request_id", requestID, "status", res.StatusCode)
	return res, nil
}

// refreshAccess trades the refresh token for a new access token and
// stores it. Any failure, network or parse, reports false without
// touching the stored pair.
func (c *Client) refreshAccess(ctx context.Context) (string, bool) {
	refresh := c.tokens.Refresh()
	if refresh == "" {
		return "", false
	}

	res, err := c.send(ctx, http.MethodPost, "/api/auth/token/refresh/", map[string]string{"refresh": refresh}, "")
	if err != nil {
		return "", false
	}
	var pair struct {
		Access string `json:"access"`
	}
	if err := readResponse(res, "/api/auth/token/refresh/", &pair); err != nil {
		return "", false
	}
	access := strings.TrimSpace(pair.Access)
	if access == "" {
		return "", false
	}
	if err := c.tokens.SetAccess(access); err != nil {
		return "", false
	}
	return access, true
}

func readResponse(res *http.Response, endpoint string, out any) error {
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("decode response from %s: %w", endpoint, err)
	}
	return nil
}

func drain(res *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 8<<10))
	_ = res.Body.Close()
}
