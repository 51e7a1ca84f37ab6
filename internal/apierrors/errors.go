// Package apierrors provides shared error types for the MailboxValidator client.
package apierrors

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is not found, disabled or expired.
	ErrUnauthorized = errors.New("invalid, disabled or expired API key")

	// ErrMissingParameter is returned for error code 100.
	ErrMissingParameter = errors.New("missing parameter")

	// ErrAPIKeyNotFound is returned for error code 101.
	ErrAPIKeyNotFound = errors.New("API key not found")

	// ErrAPIKeyDisabled is returned for error code 102.
	ErrAPIKeyDisabled = errors.New("API key disabled")

	// ErrAPIKeyExpired is returned for error code 103.
	ErrAPIKeyExpired = errors.New("API key expired")

	// ErrInsufficientCredits is returned for error code 104.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrUnknown is returned for error code 105 and for any code the client
	// does not recognise.
	ErrUnknown = errors.New("unknown error")
)

// ErrorCode is the error_code value reported by the API.
type ErrorCode string

// Error codes documented by the API.
const (
	CodeNone                ErrorCode = ""
	CodeMissingParameter    ErrorCode = "100"
	CodeAPIKeyNotFound      ErrorCode = "101"
	CodeAPIKeyDisabled      ErrorCode = "102"
	CodeAPIKeyExpired       ErrorCode = "103"
	CodeInsufficientCredits ErrorCode = "104"
	CodeUnknown             ErrorCode = "105"
)

var codeMessages = map[ErrorCode]string{
	CodeMissingParameter:    "Missing parameter.",
	CodeAPIKeyNotFound:      "API key not found.",
	CodeAPIKeyDisabled:      "API key disabled.",
	CodeAPIKeyExpired:       "API key expired.",
	CodeInsufficientCredits: "Insufficient credits.",
	CodeUnknown:             "Unknown error.",
}

// IsError reports whether the code signals a failure. Only an empty code
// (after trimming whitespace) means success; "0" and any other value are
// failures.
func (c ErrorCode) IsError() bool {
	return strings.TrimSpace(string(c)) != ""
}

// Known reports whether the code is one of the documented codes.
func (c ErrorCode) Known() bool {
	_, ok := codeMessages[c]
	return ok
}

// Message returns the documented message for the code, or "" if unknown.
func (c ErrorCode) Message() string {
	return codeMessages[c]
}

// UnmarshalJSON accepts the code as a JSON string, a JSON number or null.
func (c *ErrorCode) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*c = CodeNone
	case string:
		*c = ErrorCode(t)
	case json.Number:
		*c = ErrorCode(t.String())
	default:
		return fmt.Errorf("error_code: unexpected JSON value %s", data)
	}
	return nil
}

// APIError is a failure reported by the API through error_code.
type APIError struct {
	Code      ErrorCode
	Message   string
	RequestID string
	Endpoint  string
}

// NewAPIError builds an APIError, falling back to the documented message
// when the server sent none.
func NewAPIError(code ErrorCode, message, requestID, endpoint string) *APIError {
	code = ErrorCode(strings.TrimSpace(string(code)))
	if message == "" {
		message = code.Message()
	}
	return &APIError{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Endpoint:  endpoint,
	}
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("API error %s", e.Code)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.RequestID != "" {
		msg += fmt.Sprintf(" (request_id: %s)", e.RequestID)
	}
	return msg
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.Code {
	case CodeMissingParameter:
		return target == ErrMissingParameter
	case CodeAPIKeyNotFound:
		return target == ErrAPIKeyNotFound || target == ErrUnauthorized
	case CodeAPIKeyDisabled:
		return target == ErrAPIKeyDisabled || target == ErrUnauthorized
	case CodeAPIKeyExpired:
		return target == ErrAPIKeyExpired || target == ErrUnauthorized
	case CodeInsufficientCredits:
		return target == ErrInsufficientCredits
	}
	return target == ErrUnknown
}

// NetworkError represents a transport-level failure: DNS, connect, TLS,
// timeout or cancellation.
type NetworkError struct {
	Op  string
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	if e.URL != "" {
		return fmt.Sprintf("network error: %s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body cannot be parsed.
type DecodeError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode response (status %d, %d bytes): %v", e.StatusCode, len(e.Body), e.Err)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// HTTPError is a non-2xx response that carried no API error code.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	if len(e.Body) > 0 {
		body := string(e.Body)
		if len(body) > 200 {
			body = body[:200] + "..."
		}
		return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, body)
	}
	return fmt.Sprintf("HTTP error %d", e.StatusCode)
}
