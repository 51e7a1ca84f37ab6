package mailboxvalidator

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/mailboxvalidator/client-go/internal/api"
)

const defaultUserAgent = "mailboxvalidator-go/" + Version

// HTTPClient executes HTTP requests. *http.Client satisfies it.
type HTTPClient = api.HTTPClient

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL      string
	httpClient   HTTPClient
	timeout      time.Duration
	logger       *slog.Logger
	userAgent    string
	newRequestID func() string
}

// Option configures the client.
type Option func(*clientConfig)

// WithHTTPClient sets a custom HTTP client. It must be safe for concurrent
// use if the Client is shared between goroutines.
func WithHTTPClient(client HTTPClient) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request timeout of a dedicated *http.Client.
// It is ignored when WithHTTPClient is also given.
// Default: 30 seconds, on a client shared by all Clients.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger that receives per-request debug records.
// The API key is never logged. Default: discard.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// withBaseURL points the client at a different host. Tests only: the
// MailboxValidator host is fixed.
func withBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// withRequestIDs replaces the request ID generator. Tests only.
func withRequestIDs(fn func() string) Option {
	return func(c *clientConfig) {
		c.newRequestID = fn
	}
}

func (c *clientConfig) resolveHTTPClient() HTTPClient {
	if c.httpClient != nil {
		return c.httpClient
	}
	if c.timeout > 0 {
		return &http.Client{Timeout: c.timeout}
	}
	return nil
}
