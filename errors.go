package mailboxvalidator

import (
	"errors"

	"github.com/mailboxvalidator/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = apierrors.ErrMissingAPIKey

	// ErrUnauthorized matches error codes 101, 102 and 103.
	ErrUnauthorized = apierrors.ErrUnauthorized

	// ErrMissingParameter matches error code 100.
	ErrMissingParameter = apierrors.ErrMissingParameter

	// ErrAPIKeyNotFound matches error code 101.
	ErrAPIKeyNotFound = apierrors.ErrAPIKeyNotFound

	// ErrAPIKeyDisabled matches error code 102.
	ErrAPIKeyDisabled = apierrors.ErrAPIKeyDisabled

	// ErrAPIKeyExpired matches error code 103.
	ErrAPIKeyExpired = apierrors.ErrAPIKeyExpired

	// ErrInsufficientCredits matches error code 104.
	ErrInsufficientCredits = apierrors.ErrInsufficientCredits

	// ErrUnknown matches error code 105 and any undocumented code.
	ErrUnknown = apierrors.ErrUnknown
)

// ErrorCode is the error_code value reported by the API.
type ErrorCode = apierrors.ErrorCode

// Documented error codes.
const (
	CodeNone                = apierrors.CodeNone
	CodeMissingParameter    = apierrors.CodeMissingParameter
	CodeAPIKeyNotFound      = apierrors.CodeAPIKeyNotFound
	CodeAPIKeyDisabled      = apierrors.CodeAPIKeyDisabled
	CodeAPIKeyExpired       = apierrors.CodeAPIKeyExpired
	CodeInsufficientCredits = apierrors.CodeInsufficientCredits
	CodeUnknown             = apierrors.CodeUnknown
)

// MailboxValidatorError is implemented by all SDK errors.
type MailboxValidatorError interface {
	error
	MailboxValidatorError() // marker method
}

// APIError is a failure the API reported through error_code. It is
// returned as a Go error, never as a result.
type APIError struct {
	Code      ErrorCode
	Message   string
	RequestID string
	Endpoint  string
}

func (e *APIError) Error() string {
	return e.internal().Error()
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	return e.internal().Is(target)
}

// MailboxValidatorError implements the MailboxValidatorError interface.
func (e *APIError) MailboxValidatorError() {}

func (e *APIError) internal() *apierrors.APIError {
	return &apierrors.APIError{
		Code:      e.Code,
		Message:   e.Message,
		RequestID: e.RequestID,
		Endpoint:  e.Endpoint,
	}
}

// NetworkError represents a transport-level failure. The URL never
// contains the API key.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return (&apierrors.NetworkError{Op: e.Op, URL: e.URL, Err: e.Err}).Error()
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// MailboxValidatorError implements the MailboxValidatorError interface.
func (e *NetworkError) MailboxValidatorError() {}

// DecodeError is returned when a response body is not JSON or does not fit
// the result shape. Body holds the raw response.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return (&apierrors.DecodeError{StatusCode: e.StatusCode, Body: e.Body, Err: e.Err}).Error()
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// MailboxValidatorError implements the MailboxValidatorError interface.
func (e *DecodeError) MailboxValidatorError() {}

// HTTPError is a non-2xx response without an API error code.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return (&apierrors.HTTPError{StatusCode: e.StatusCode, Body: e.Body}).Error()
}

// MailboxValidatorError implements the MailboxValidatorError interface.
func (e *HTTPError) MailboxValidatorError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.As() checks work with public error types.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Code:      apiErr.Code,
			Message:   apiErr.Message,
			RequestID: apiErr.RequestID,
			Endpoint:  apiErr.Endpoint,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Op:  netErr.Op,
			URL: netErr.URL,
			Err: netErr.Err,
		}
	}

	var decErr *apierrors.DecodeError
	if errors.As(err, &decErr) {
		return &DecodeError{
			StatusCode: decErr.StatusCode,
			Body:       decErr.Body,
			Err:        decErr.Err,
		}
	}

	var httpErr *apierrors.HTTPError
	if errors.As(err, &httpErr) {
		return &HTTPError{
			StatusCode: httpErr.StatusCode,
			Body:       httpErr.Body,
		}
	}

	return err
}
