package mailboxvalidator

import (
	"context"

	"github.com/mailboxvalidator/client-go/internal/api"
)

// Version is the SDK version reported in the User-Agent header.
const Version = "1.0.0"

// packageOptions are applied by the package-level functions.
var packageOptions []Option

// Client calls the MailboxValidator API with a fixed API key.
//
// A Client is immutable and safe for concurrent use. It holds no state
// between calls; each method performs exactly one GET request.
type Client struct {
	apiClient *api.Client
}

// New creates a new MailboxValidator client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL:   api.DefaultBaseURL,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := api.NewClient(api.Config{
		APIKey:       apiKey,
		BaseURL:      cfg.baseURL,
		HTTPClient:   cfg.resolveHTTPClient(),
		UserAgent:    cfg.userAgent,
		Logger:       cfg.logger,
		NewRequestID: cfg.newRequestID,
	})
	if err != nil {
		return nil, err //coverage:ignore
	}

	return &Client{apiClient: apiClient}, nil
}

// ValidateEmail runs the full validation of emailAddress: syntax, domain,
// SMTP, catch-all, disposable, free, role and risk checks, plus the overall
// status and score.
//
// The address is sent as given; all checking happens on the server. An
// error_code in the response is returned as *APIError. Transport failures
// are *NetworkError and unparseable bodies are *DecodeError.
func (c *Client) ValidateEmail(ctx context.Context, emailAddress string) (*ValidationResult, error) {
	result, err := c.apiClient.ValidateEmail(ctx, emailAddress)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// IsDisposableEmail checks whether emailAddress belongs to a disposable
// email provider.
func (c *Client) IsDisposableEmail(ctx context.Context, emailAddress string) (*DisposableResult, error) {
	result, err := c.apiClient.IsDisposableEmail(ctx, emailAddress)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// IsFreeEmail checks whether emailAddress belongs to a free email provider.
func (c *Client) IsFreeEmail(ctx context.Context, emailAddress string) (*FreeResult, error) {
	result, err := c.apiClient.IsFreeEmail(ctx, emailAddress)
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// ValidateEmail validates emailAddress with apiKey using default settings.
// See Client.ValidateEmail.
func ValidateEmail(ctx context.Context, emailAddress, apiKey string) (*ValidationResult, error) {
	c, err := New(apiKey, packageOptions...)
	if err != nil {
		return nil, err
	}
	return c.ValidateEmail(ctx, emailAddress)
}

// IsDisposableEmail checks emailAddress with apiKey using default settings.
// See Client.IsDisposableEmail.
func IsDisposableEmail(ctx context.Context, emailAddress, apiKey string) (*DisposableResult, error) {
	c, err := New(apiKey, packageOptions...)
	if err != nil {
		return nil, err
	}
	return c.IsDisposableEmail(ctx, emailAddress)
}

// IsFreeEmail checks emailAddress with apiKey using default settings.
// See Client.IsFreeEmail.
func IsFreeEmail(ctx context.Context, emailAddress, apiKey string) (*FreeResult, error) {
	c, err := New(apiKey, packageOptions...)
	if err != nil {
		return nil, err
	}
	return c.IsFreeEmail(ctx, emailAddress)
}
