package main

import (
	"context"
	"errors"

	mailboxvalidator "github.com/mailboxvalidator/client-go"
	"golang.org/x/sync/errgroup"
)

// validator is the subset of *mailboxvalidator.Client the CLI calls.
type validator interface {
	ValidateEmail(ctx context.Context, emailAddress string) (*mailboxvalidator.ValidationResult, error)
	IsDisposableEmail(ctx context.Context, emailAddress string) (*mailboxvalidator.DisposableResult, error)
	IsFreeEmail(ctx context.Context, emailAddress string) (*mailboxvalidator.FreeResult, error)
}

type operation func(ctx context.Context, v validator, email string) (any, error)

var operations = map[string]operation{
	"validate": func(ctx context.Context, v validator, email string) (any, error) {
		return unwrap(v.ValidateEmail(ctx, email))
	},
	"disposable": func(ctx context.Context, v validator, email string) (any, error) {
		return unwrap(v.IsDisposableEmail(ctx, email))
	},
	"free": func(ctx context.Context, v validator, email string) (any, error) {
		return unwrap(v.IsFreeEmail(ctx, email))
	},
}

// unwrap keeps a typed nil result from reaching the output as JSON null.
func unwrap[T any](result *T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return result, nil
}

type record struct {
	Email  string       `json:"email"`
	Result any          `json:"result,omitempty"`
	Error  *errorOutput `json:"error,omitempty"`
}

type errorOutput struct {
	Kind    string `json:"kind"`
	Code    string `json:"code,omitempty"`
	Status  int    `json:"status,omitempty"`
	Message string `json:"message"`
}

func describeError(err error) *errorOutput {
	var apiErr *mailboxvalidator.APIError
	var netErr *mailboxvalidator.NetworkError
	var decErr *mailboxvalidator.DecodeError
	var httpErr *mailboxvalidator.HTTPError

	switch {
	case errors.As(err, &apiErr):
		return &errorOutput{Kind: "api", Code: string(apiErr.Code), Message: apiErr.Message}
	case errors.As(err, &netErr):
		return &errorOutput{Kind: "network", Message: netErr.Error()}
	case errors.As(err, &decErr):
		return &errorOutput{Kind: "decode", Status: decErr.StatusCode, Message: decErr.Error()}
	case errors.As(err, &httpErr):
		return &errorOutput{Kind: "http", Status: httpErr.StatusCode, Message: httpErr.Error()}
	}
	return &errorOutput{Kind: "other", Message: err.Error()}
}

// lookupAll runs op for every address with at most limit calls in flight.
// Records come back in input order; failures are recorded, not returned.
func lookupAll(ctx context.Context, v validator, op operation, emails []string, limit int) ([]record, int) {
	records := make([]record, len(emails))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, email := range emails {
		g.Go(func() error {
			records[i].Email = email
			result, err := op(ctx, v, email)
			if err != nil {
				records[i].Error = describeError(err)
				return nil
			}
			records[i].Result = result
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, r := range records {
		if r.Error != nil {
			failed++
		}
	}
	return records, failed
}
