package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mailboxvalidator/client-go/internal/apierrors"
)

const (
	// DefaultBaseURL is the MailboxValidator API host.
	DefaultBaseURL = "https://api.mailboxvalidator.com"
	// DefaultTimeout bounds a single request on the default HTTP client.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "mailboxvalidator-go"
	// MaxResponseBytes caps how much of a response body is read.
	MaxResponseBytes = 1 << 20
)

const redacted = "REDACTED"

// HTTPClient executes HTTP requests. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// defaultHTTPClient is shared by every Client that does not bring its own,
// so all of them reuse one connection pool.
var defaultHTTPClient = &http.Client{Timeout: DefaultTimeout}

// DefaultHTTPClient returns the shared HTTP client.
func DefaultHTTPClient() *http.Client {
	return defaultHTTPClient
}

// Config holds configuration for creating a new Client.
type Config struct {
	// APIKey is the MailboxValidator API key. Required.
	APIKey string
	// BaseURL overrides DefaultBaseURL.
	BaseURL string
	// HTTPClient is the transport. Defaults to the shared client.
	HTTPClient HTTPClient
	// UserAgent defaults to DefaultUserAgent.
	UserAgent string
	// Logger receives debug records per request. Defaults to discarding.
	Logger *slog.Logger
	// NewRequestID generates X-Request-ID values. Defaults to random UUIDs.
	NewRequestID func() string
}

// Client is the HTTP API client.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   HTTPClient
	userAgent    string
	logger       *slog.Logger
	newRequestID func() string
}

// NewClient creates a new API client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	c := &Client{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:       cfg.APIKey,
		httpClient:   cfg.HTTPClient,
		userAgent:    cfg.UserAgent,
		logger:       cfg.Logger,
		newRequestID: cfg.NewRequestID,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = defaultHTTPClient
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if c.newRequestID == nil {
		c.newRequestID = func() string { return uuid.New().String() }
	}

	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestURL builds the request URL for path and email.
func (c *Client) RequestURL(path, email string) string {
	return c.buildURL(path, email, c.apiKey)
}

// RedactedURL is RequestURL with the API key replaced.
func (c *Client) RedactedURL(path, email string) string {
	return c.buildURL(path, email, redacted)
}

func (c *Client) buildURL(path, email, key string) string {
	return c.baseURL + path +
		"?email=" + url.QueryEscape(email) +
		"&key=" + url.QueryEscape(key) +
		"&format=json"
}

// envelope holds the fields every response shape shares for error reporting.
type envelope struct {
	ErrorCode    apierrors.ErrorCode `json:"error_code"`
	ErrorMessage string              `json:"error_message"`
}

// Get performs a GET against path for email and decodes the JSON body into
// result. It returns *apierrors.NetworkError, *apierrors.DecodeError,
// *apierrors.HTTPError or *apierrors.APIError on failure.
func (c *Client) Get(ctx context.Context, path, email string, result any) error {
	requestID := c.newRequestID()
	logger := c.logger.With("endpoint", path, "request_id", requestID)
	redactedURL := c.RedactedURL(path, email)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.RequestURL(path, email), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", redactURLError(err, redactedURL))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = redactURLError(err, redactedURL)
		logger.DebugContext(ctx, "request failed", "error", err, "duration", time.Since(start))
		return &apierrors.NetworkError{Op: http.MethodGet, URL: redactedURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		logger.DebugContext(ctx, "read body failed", "status", resp.StatusCode, "error", err)
		return &apierrors.NetworkError{Op: "read", URL: redactedURL, Err: err}
	}

	logger.DebugContext(ctx, "response received",
		"status", resp.StatusCode,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	return decodeResponse(resp.StatusCode, body, requestID, path, result)
}

func decodeResponse(status int, body []byte, requestID, path string, result any) error {
	env, envErr := decodeEnvelope(body)

	if status < 200 || status > 299 {
		if envErr == nil && env.ErrorCode.IsError() {
			return apierrors.NewAPIError(env.ErrorCode, env.ErrorMessage, requestID, path)
		}
		return &apierrors.HTTPError{StatusCode: status, Body: body}
	}

	if envErr != nil {
		return &apierrors.DecodeError{StatusCode: status, Body: body, Err: envErr}
	}
	if env.ErrorCode.IsError() {
		return apierrors.NewAPIError(env.ErrorCode, env.ErrorMessage, requestID, path)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &apierrors.DecodeError{StatusCode: status, Body: body, Err: err}
	}
	return nil
}

var errNotObject = errors.New("response body is not a JSON object")

func decodeEnvelope(body []byte) (envelope, error) {
	var env envelope
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return env, errNotObject
	}
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return env, err
	}
	return env, nil
}

// redactURLError keeps the API key out of *url.Error messages, which embed
// the full request URL.
func redactURLError(err error, redactedURL string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: redactedURL, Err: urlErr.Err}
	}
	return err
}
