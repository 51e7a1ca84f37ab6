package api

import "context"

// Endpoint paths.
const (
	PathValidation = "/v1/validation/single"
	PathDisposable = "/v1/disposable/single"
	PathFree       = "/v1/free/single"
)

// ValidateEmail calls the single validation endpoint.
func (c *Client) ValidateEmail(ctx context.Context, email string) (*ValidationResult, error) {
	return fetch[ValidationResult](ctx, c, PathValidation, email)
}

// IsDisposableEmail calls the disposable email endpoint.
func (c *Client) IsDisposableEmail(ctx context.Context, email string) (*DisposableResult, error) {
	return fetch[DisposableResult](ctx, c, PathDisposable, email)
}

// IsFreeEmail calls the free email endpoint.
func (c *Client) IsFreeEmail(ctx context.Context, email string) (*FreeResult, error) {
	return fetch[FreeResult](ctx, c, PathFree, email)
}

func fetch[T any](ctx context.Context, c *Client, path, email string) (*T, error) {
	var result T
	if err := c.Get(ctx, path, email, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
